// Package templates embeds the HTML views.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse parses every embedded view with funcs available to all of them
func Parse(funcs template.FuncMap) (*template.Template, error) {
	return template.New("views").Funcs(funcs).ParseFS(files, "*.html")
}
