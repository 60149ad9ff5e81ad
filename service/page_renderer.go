package service

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"aqua-store/models"
	"aqua-store/templates"
)

// PageRenderer executes the embedded HTML views
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the embedded templates
func NewPageRenderer() (*PageRenderer, error) {
	tmpl, err := templates.Parse(template.FuncMap{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// RenderCatalog writes the catalog page
func (r *PageRenderer) RenderCatalog(w io.Writer, page models.CatalogPage) error {
	return r.execute(w, "catalog", page)
}

// RenderPrint writes the printable grid used by the PDF export
func (r *PageRenderer) RenderPrint(w io.Writer, page models.CatalogPage) error {
	return r.execute(w, "print", page)
}

// execute renders into a buffer first so a template error never leaves a half-written response
func (r *PageRenderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
