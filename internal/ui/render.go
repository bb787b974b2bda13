// internal/ui/render.go
package ui

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

type pagerView struct {
	Action string
	Pager
}

var funcs = template.FuncMap{
	"pager": func(action string, p Pager) pagerView {
		return pagerView{Action: action, Pager: p}
	},
}

var pageTemplate = template.Must(template.New("ui").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

// Render writes the full HTML document for p.
func Render(w io.Writer, p Page) error {
	return pageTemplate.ExecuteTemplate(w, "page", p)
}
