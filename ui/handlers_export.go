package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"viromex/adapters/tabular"
	"viromex/app"
)

// handleExportCSV streams the annotated table as CSV.
func (s *Server) handleExportCSV(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="virome_annotated_table.csv"`)
	if err := tabular.WriteAnnotatedCSV(c.Writer, analysis.Records); err != nil {
		s.renderError(c, err)
	}
}

// handleExportXLSX streams the annotated table as an Excel workbook.
func (s *Server) handleExportXLSX(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="virome_annotated_table.xlsx"`)
	if err := tabular.WriteAnnotatedXLSX(c.Writer, analysis.Records); err != nil {
		s.renderError(c, err)
	}
}

// handleExportSummary serves the plain-text One Health summary.
func (s *Server) handleExportSummary(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="one_health_summary.txt"`)
	c.String(http.StatusOK, "%s", app.BuildOneHealthSummary(analysis))
}

// JSON API mirrors

func (s *Server) handleAPIAnalysis(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleAPIDiversity(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	view := analysis.View(filterFromQuery(c))
	c.JSON(http.StatusOK, gin.H{
		"diversity": view.Diversity,
		"stats":     view.Stats,
	})
}

func (s *Server) handleAPIFamilies(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"families": analysis.Families})
}

func (s *Server) handleAPIHosts(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"hosts": analysis.Hosts})
}

func (s *Server) handleAPISpillover(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"flagged": analysis.SpilloverRecords()})
}
