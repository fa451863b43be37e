package ui

import (
	_ "embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed methods.md
var methodsMarkdown []byte

// handleMethods renders the methods notes (index definitions, rule tables,
// caveats) from the embedded markdown document.
func (s *Server) handleMethods(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	rendered := markdown.ToHTML(methodsMarkdown, p, renderer)

	s.renderTemplate(c, "methods.html", map[string]interface{}{
		"Content": template.HTML(rendered),
		"Active":  "methods",
	})
}
