package router

import (
	"context"
	"encoding/json"
	"errors"
	"image/color"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aqua-store/app/controller"
	"aqua-store/models"
	"aqua-store/repository"
	"aqua-store/service"
)

type fakeExporter struct {
	criteria models.FilterCriteria
	err      error
}

func (f *fakeExporter) GeneratePDF(ctx context.Context, criteria models.FilterCriteria) ([]byte, error) {
	f.criteria = criteria
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func testProducts() []models.Product {
	return []models.Product{
		{Code: "P001", Name: "Silla", Description: "Roble", Category: "Chairs", Price: 1200, Status: models.StatusAvailable, Images: []string{"img/p001.png", "img/p001-b.png"}},
		{Code: "B2", Name: "Mesa", Description: "Pino", Category: "Tables", Price: 45000, Status: models.StatusSold, Images: []string{"img/b2.png"}},
	}
}

func newTestServer(t *testing.T, source repository.CatalogSourceInterface, exporter controller.PDFExporter) (http.Handler, string) {
	t.Helper()
	log := zap.NewNop()
	staticDir := t.TempDir()

	store := service.NewCatalogStore(source, log)
	_ = store.Load(context.Background())

	renderer, err := service.NewPageRenderer()
	require.NoError(t, err)

	controllers := &Controllers{
		Catalog: controller.NewCatalogController(store, renderer, exporter, log),
		Contact: controller.NewContactController(store, service.NewContactAction("https://wa.me", "1234567890"), log),
		Product: controller.NewProductController(store, log),
		Image:   controller.NewImageController(service.NewThumbnailService(staticDir, log), log),
	}
	return SetupRoutes(controllers, store, staticDir, log), staticDir
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	h, _ := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})
	rec := get(t, h, "/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	h, _ = newTestServer(t, repository.NewFailingSource("products.json", errors.New("boom")), &fakeExporter{})
	rec = get(t, h, "/ping")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded"}`, rec.Body.String())
}

func TestIndex(t *testing.T) {
	h, _ := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})

	tests := []struct {
		name        string
		target      string
		contains    []string
		notContains []string
	}{
		{
			name:        "full grid",
			target:      "/",
			contains:    []string{"Mostrando 2 productos", `data-code="P001"`, `data-code="B2"`},
			notContains: []string{`id="product-modal"`},
		},
		{
			name:        "filtered",
			target:      "/?status=vendido",
			contains:    []string{"Mostrando 1 producto", `data-code="B2"`},
			notContains: []string{`data-code="P001"`},
		},
		{
			name:     "empty result",
			target:   "/?q=sofa",
			contains: []string{"No se encontraron productos"},
		},
		{
			name:     "overlay open",
			target:   "/?product=P001&image=1",
			contains: []string{`id="product-modal"`, `class="modal-open"`, "/thumbs/medium/img/p001-b.png", `href="/contact/P001"`},
		},
		{
			name:        "unknown product leaves overlay closed",
			target:      "/?product=NOPE",
			contains:    []string{"Mostrando 2 productos"},
			notContains: []string{`id="product-modal"`},
		},
		{
			name:     "out of range image keeps cover",
			target:   "/?product=P001&image=9",
			contains: []string{"/thumbs/medium/img/p001.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestIndexLoadError(t *testing.T) {
	h, _ := newTestServer(t, repository.NewFailingSource("products.json", errors.New("HTTP error! status: 404")), &fakeExporter{})

	rec := get(t, h, "/?product=P001")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al cargar los productos")
	assert.NotContains(t, rec.Body.String(), `id="product-modal"`)
}

func TestPrint(t *testing.T) {
	h, _ := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})

	rec := get(t, h, "/catalog/print?category=Tables")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-code="B2"`)
	assert.NotContains(t, rec.Body.String(), `data-code="P001"`)
	assert.NotContains(t, rec.Body.String(), `id="filters"`)
}

func TestExportPDF(t *testing.T) {
	exporter := &fakeExporter{}
	h, _ := newTestServer(t, repository.NewMemorySource(testProducts()...), exporter)

	rec := get(t, h, "/catalog.pdf?category=Chairs&q=silla")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
	assert.Equal(t, models.FilterCriteria{Category: "Chairs", Search: "silla"}, exporter.criteria)

	exporter.err = errors.New("chrome not found")
	rec = get(t, h, "/catalog.pdf")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestContactRedirect(t *testing.T) {
	h, _ := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})

	rec := get(t, h, "/contact/P001")
	require.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "https://wa.me/1234567890?text="), location)

	parsed, err := url.Parse(location)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), "Código: P001")
	assert.Contains(t, parsed.Query().Get("text"), "Precio: $1,200")

	rec = get(t, h, "/contact/NOPE")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestProductsAPI(t *testing.T) {
	h, _ := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})

	rec := get(t, h, "/api/products?category=Chairs")
	require.Equal(t, http.StatusOK, rec.Code)
	var list controller.ListProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "P001", list.Products[0].Code)

	rec = get(t, h, "/api/products/B2")
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Mesa", p.Name)

	rec = get(t, h, "/api/products/NOPE")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Chairs","Tables"]`, rec.Body.String())
}

func TestProductsAPILoadError(t *testing.T) {
	h, _ := newTestServer(t, repository.NewFailingSource("products.json", errors.New("boom")), &fakeExporter{})

	for _, target := range []string{"/api/products", "/api/products/P001", "/api/categories"} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "boom", target)
	}
}

func TestThumbnails(t *testing.T) {
	h, staticDir := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})

	full := filepath.Join(staticDir, "img", "p001.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, imaging.Save(imaging.New(900, 600, color.Black), full))

	rec := get(t, h, "/thumbs/thumb/img/p001.png")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())

	rec = get(t, h, "/thumbs/huge/img/p001.png")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/thumbs/thumb/img/missing.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	h, staticDir := newTestServer(t, repository.NewMemorySource(testProducts()...), &fakeExporter{})
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "robots.txt"), []byte("User-agent: *"), 0o644))

	rec := get(t, h, "/static/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-agent: *", rec.Body.String())
}
