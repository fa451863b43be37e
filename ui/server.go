package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"viromex/app"
	"viromex/internal/errors"
)

// Server is the web front end: a gin router over the analysis service with
// embedded html/template views.
type Server struct {
	router         *gin.Engine
	service        *app.AnalysisService
	templates      *template.Template
	maxUploadBytes int64
}

// NewServer creates the web server and parses the embedded templates.
func NewServer(service *app.AnalysisService, templateFiles embed.FS, maxUploadBytes int64) (*Server, error) {
	s := &Server{
		router:         gin.Default(),
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}

	if err := s.parseTemplates(templateFiles); err != nil {
		return nil, err
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) parseTemplates(templateFiles embed.FS) error {
	funcMap := template.FuncMap{
		"pct": func(part, whole int) string {
			if whole == 0 {
				return "0.0"
			}
			return fmt.Sprintf("%.1f", 100*float64(part)/float64(whole))
		},
		"f3": func(v float64) string { return fmt.Sprintf("%.3f", v) },
		"lower": strings.ToLower,
		"has": func(values []string, v string) bool {
			for _, candidate := range values {
				if candidate == v {
					return true
				}
			}
			return false
		},
		"barWidth": func(count, max int) int {
			if max == 0 {
				return 0
			}
			w := count * 100 / max
			if w < 1 {
				w = 1
			}
			return w
		},
	}

	templatesFS, err := fs.Sub(templateFiles, "ui/templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	files, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob templates: %w", err)
	}
	log.Printf("[TemplateInit] Found %d template files: %v", len(files), files)

	s.templates = template.New("").Funcs(funcMap)
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = s.maxUploadBytes

	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleUpload)
	s.router.GET("/methods", s.handleMethods)

	// Dashboard views, one per tab of the explorer
	s.router.GET("/analysis/:id", s.handleOverview)
	s.router.GET("/analysis/:id/community", s.handleCommunity)
	s.router.GET("/analysis/:id/taxonomy", s.handleTaxonomy)
	s.router.GET("/analysis/:id/patterns", s.handlePatterns)
	s.router.GET("/analysis/:id/families", s.handleFamilies)
	s.router.GET("/analysis/:id/hosts", s.handleHosts)
	s.router.GET("/analysis/:id/spillover", s.handleSpillover)

	// Exports
	s.router.GET("/analysis/:id/export/annotated.csv", s.handleExportCSV)
	s.router.GET("/analysis/:id/export/annotated.xlsx", s.handleExportXLSX)
	s.router.GET("/analysis/:id/export/summary.txt", s.handleExportSummary)

	// JSON API mirrors for the summary tables
	api := s.router.Group("/api")
	api.GET("/analysis/:id", s.handleAPIAnalysis)
	api.GET("/analysis/:id/diversity", s.handleAPIDiversity)
	api.GET("/analysis/:id/families", s.handleAPIFamilies)
	api.GET("/analysis/:id/hosts", s.handleAPIHosts)
	api.GET("/analysis/:id/spillover", s.handleAPISpillover)
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting Virome Explorer UI on http://%s", addr)
	return s.router.Run(addr)
}

func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// renderError maps an AppError to an HTTP status and a user-facing page.
// Validation problems are the user's to fix; everything else is ours.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeSchemaError, errors.CodeEmptyInput, errors.CodeInvalidInput, errors.CodeParseError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}

	log.Printf("[Server] Request failed (%s): %v", errors.GetCode(err), err)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	renderErr := s.templates.ExecuteTemplate(c.Writer, "error.html", map[string]interface{}{
		"Message": err.Error(),
		"Code":    errors.GetCode(err),
		"Active":  "",
	})
	if renderErr != nil {
		c.String(status, "%s", err.Error())
	}
	c.Abort()
}
