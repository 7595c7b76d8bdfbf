package views

import (
	"embed"
	"html/template"
)

//go:embed *.html
var EmbeddedViews embed.FS

// Templates parses every embedded view.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(EmbeddedViews, "*.html")
}
