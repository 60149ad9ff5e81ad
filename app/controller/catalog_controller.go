package controller

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"aqua-store/models"
	"aqua-store/service"
)

// PDFExporter prints the filtered catalog to PDF
type PDFExporter interface {
	GeneratePDF(ctx context.Context, criteria models.FilterCriteria) ([]byte, error)
}

// CatalogController serves the catalog page, its print view and the PDF export
type CatalogController struct {
	store    *service.CatalogStore
	renderer *service.PageRenderer
	exporter PDFExporter
	logger   *zap.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	store *service.CatalogStore,
	renderer *service.PageRenderer,
	exporter PDFExporter,
	logger *zap.Logger,
) *CatalogController {
	return &CatalogController{
		store:    store,
		renderer: renderer,
		exporter: exporter,
		logger:   logger,
	}
}

// Index handles GET /?q=&category=&status=&product=&image=
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromRequest(r)

	var overlay service.Overlay
	if code := r.URL.Query().Get("product"); code != "" && c.store.Err() == nil {
		overlay = overlay.Open(c.store, code)
		if !overlay.IsOpen() {
			c.logger.Debug("product lookup miss", zap.String("code", code))
		}
		overlay = overlay.ChangeImage(imageFromRequest(r))
	}

	page := service.BuildCatalogPage(c.store, criteria, overlay)
	c.render(w, page, c.renderer.RenderCatalog)
}

// Print handles GET /catalog/print, the grid without controls or overlay
func (c *CatalogController) Print(w http.ResponseWriter, r *http.Request) {
	page := service.BuildCatalogPage(c.store, criteriaFromRequest(r), service.Overlay{})
	c.render(w, page, c.renderer.RenderPrint)
}

func (c *CatalogController) render(w http.ResponseWriter, page models.CatalogPage, fn func(io.Writer, models.CatalogPage) error) {
	var buf bytes.Buffer
	if err := fn(&buf, page); err != nil {
		c.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if page.Grid.LoadFailed {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		c.logger.Error("error writing page response", zap.Error(err))
	}
}

// ExportPDF handles GET /catalog.pdf?q=&category=&status=
func (c *CatalogController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	if err := c.store.Err(); err != nil {
		http.Error(w, "Catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	criteria := criteriaFromRequest(r)
	pdf, err := c.exporter.GeneratePDF(r.Context(), criteria)
	if err != nil {
		c.logger.Error("error generating pdf", zap.Error(err))
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogo-aquastore.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		c.logger.Error("error writing pdf response", zap.Error(err))
	}
}
