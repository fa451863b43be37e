package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"viromex/app"
	"viromex/domain/core"
	"viromex/domain/taxa"
	"viromex/internal/errors"
)

// handleIndex renders the upload page, linking the most recent analysis if
// one exists.
func (s *Server) handleIndex(c *gin.Context) {
	data := map[string]interface{}{"Active": "upload"}
	if latest, ok := s.service.Latest(); ok {
		data["Latest"] = latest
	}
	s.renderTemplate(c, "index.html", data)
}

// handleUpload ingests a multipart CSV/XLSX table and redirects to the
// overview of the resulting analysis.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.renderError(c, errors.InvalidInput("no file in upload"))
		return
	}
	if fileHeader.Size > s.maxUploadBytes {
		s.renderError(c, errors.InvalidInput("uploaded file exceeds the size limit"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		s.renderError(c, errors.Wrap(err, "failed to open upload"))
		return
	}
	defer src.Close()

	log.Printf("[Upload] Received %s (%d bytes)", fileHeader.Filename, fileHeader.Size)
	analysis, err := s.service.AnalyzeReader(src, fileHeader.Filename)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/analysis/"+analysis.ID.String())
}

func (s *Server) lookupAnalysis(c *gin.Context) (*app.Analysis, bool) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return nil, false
	}
	analysis, err := s.service.Get(id)
	if err != nil {
		s.renderError(c, err)
		return nil, false
	}
	return analysis, true
}

// handleOverview shows headline metrics and the One Health text summary.
func (s *Server) handleOverview(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	s.renderTemplate(c, "overview.html", map[string]interface{}{
		"Analysis": analysis,
		"Summary":  app.BuildOneHealthSummary(analysis),
		"Active":   "overview",
	})
}

// handleCommunity shows the most abundant taxa and the rank-abundance curve.
func (s *Server) handleCommunity(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	top := taxa.TopTaxa(analysis.Records, 15)
	maxCount := 0
	if len(top) > 0 {
		maxCount = top[0].Count
	}
	s.renderTemplate(c, "community.html", map[string]interface{}{
		"Analysis":      analysis,
		"TopTaxa":       top,
		"MaxCount":      maxCount,
		"RankAbundance": taxa.RankAbundance(analysis.Records),
		"Active":        "community",
	})
}

// handleTaxonomy shows the annotated table with host and relevance filters.
// Filters arrive as repeated query params; recomputation happens per
// request, there is no filter state on the server.
func (s *Server) handleTaxonomy(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}

	filter := filterFromQuery(c)
	view := analysis.View(filter)

	s.renderTemplate(c, "taxonomy.html", map[string]interface{}{
		"Analysis":       analysis,
		"View":           view,
		"HostOptions":    taxa.HostCategories(),
		"RelevanceTags":  []taxa.Relevance{taxa.RelevanceLikely, taxa.RelevancePossible, taxa.RelevanceUnlikely, taxa.RelevanceUnknown},
		"SelectedHosts":  c.QueryArray("host"),
		"SelectedLevels": c.QueryArray("relevance"),
		"Active":         "taxonomy",
	})
}

func filterFromQuery(c *gin.Context) app.Filter {
	var filter app.Filter
	for _, h := range c.QueryArray("host") {
		filter.Hosts = append(filter.Hosts, taxa.HostCategory(h))
	}
	for _, r := range c.QueryArray("relevance") {
		filter.Relevance = append(filter.Relevance, taxa.Relevance(r))
	}
	return filter
}

// handlePatterns shows host and relevance composition breakdowns.
func (s *Server) handlePatterns(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	s.renderTemplate(c, "patterns.html", map[string]interface{}{
		"Analysis":  analysis,
		"Hosts":     analysis.Hosts,
		"Relevance": analysis.Relevance,
		"Active":    "patterns",
	})
}

// handleFamilies shows the top viral families by read count. Unclassified
// taxa are excluded from the ranking so the table reflects resolved
// assignments only.
func (s *Server) handleFamilies(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}

	families := make([]taxa.GroupSummary, 0, len(analysis.Families))
	for _, fam := range analysis.Families {
		if fam.Label == taxa.UnclassifiedFamily {
			continue
		}
		if len(families) == 10 {
			break
		}
		fam.Rank = len(families) + 1
		families = append(families, fam)
	}
	maxTotal := 0
	if len(families) > 0 {
		maxTotal = families[0].TotalCount
	}

	s.renderTemplate(c, "families.html", map[string]interface{}{
		"Analysis": analysis,
		"Families": families,
		"MaxTotal": maxTotal,
		"Active":   "families",
	})
}

// handleHosts is the single-host drill-down with per-host diversity.
func (s *Server) handleHosts(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}

	selected := taxa.HostCategory(c.DefaultQuery("host", string(taxa.HostBacterial)))
	view := analysis.HostView(selected)

	s.renderTemplate(c, "hosts.html", map[string]interface{}{
		"Analysis":    analysis,
		"Selected":    selected,
		"HostOptions": taxa.HostCategories(),
		"View":        view,
		"TopTaxa":     taxa.TopTaxa(view.Records, 10),
		"Active":      "hosts",
	})
}

// handleSpillover lists taxa flagged Likely or Possible, count descending.
// No flagged taxa is an expected empty state.
func (s *Server) handleSpillover(c *gin.Context) {
	analysis, ok := s.lookupAnalysis(c)
	if !ok {
		return
	}
	s.renderTemplate(c, "spillover.html", map[string]interface{}{
		"Analysis": analysis,
		"Flagged":  analysis.SpilloverRecords(),
		"Active":   "spillover",
	})
}
