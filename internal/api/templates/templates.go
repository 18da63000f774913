// Package templates embeds the HTML pages served by the form handlers.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded page. Each page is addressed by its file name.
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}

// MustLoad is Load for router setup, where a broken template is a programming error
func MustLoad() *template.Template {
	return template.Must(Load())
}
