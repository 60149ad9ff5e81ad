package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aqua-store/models"
	"aqua-store/repository"
)

func renderCatalog(t *testing.T, page models.CatalogPage) string {
	t.Helper()
	renderer, err := NewPageRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.RenderCatalog(&buf, page))
	return buf.String()
}

func TestRenderCatalogGrid(t *testing.T) {
	store := loadedStore(t)
	html := renderCatalog(t, BuildCatalogPage(store, models.FilterCriteria{}, Overlay{}))

	assert.Contains(t, html, `id="products-grid"`)
	assert.Contains(t, html, "Mostrando 4 productos")
	assert.Contains(t, html, `data-code="P001"`)
	assert.Contains(t, html, "$320,000")
	assert.Contains(t, html, `<option value="Aquariums"`)
	assert.NotContains(t, html, `id="product-modal"`)
	assert.NotContains(t, html, `class="modal-open"`)
}

func TestRenderCatalogEscapesText(t *testing.T) {
	store := loadedStore(t, models.Product{
		Code: "X1", Name: "<script>alert(1)</script>", Category: "C",
		Status: models.StatusAvailable, Images: []string{"x.jpg"},
	})
	html := renderCatalog(t, BuildCatalogPage(store, models.FilterCriteria{}, Overlay{}))

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestRenderCatalogEmptyState(t *testing.T) {
	store := loadedStore(t)
	html := renderCatalog(t, BuildCatalogPage(store, models.FilterCriteria{Search: "zzz"}, Overlay{}))

	assert.Contains(t, html, "No se encontraron productos")
	assert.Contains(t, html, "Mostrando 0 productos")
	assert.Contains(t, html, `value="zzz"`)
}

func TestRenderCatalogLoadError(t *testing.T) {
	store := NewCatalogStore(repository.NewFailingSource("memory", errors.New("boom")), zap.NewNop())
	require.Error(t, store.Load(context.Background()))

	page := BuildCatalogPage(store, models.FilterCriteria{}, Overlay{})
	assert.True(t, page.Grid.LoadFailed)
	assert.False(t, page.Overlay.Open)

	html := renderCatalog(t, page)
	assert.Contains(t, html, "Error al cargar los productos")
}

func TestRenderCatalogOverlay(t *testing.T) {
	store := loadedStore(t)
	overlay := Overlay{}.Open(store, "P001").ChangeImage(1)
	html := renderCatalog(t, BuildCatalogPage(store, models.FilterCriteria{}, overlay))

	assert.Contains(t, html, `class="modal-open"`)
	assert.Contains(t, html, `id="product-modal"`)
	assert.Contains(t, html, `src="/thumbs/medium/img/p001-2.jpg"`)
	assert.Contains(t, html, `href="/contact/P001"`)
	assert.Contains(t, html, `id="modal-close" href="/"`)
	assert.Contains(t, html, `class="modal-thumbnail active" href="/?image=1&amp;product=P001" data-index="1"`)
}

func TestRenderPrint(t *testing.T) {
	store := loadedStore(t)
	renderer, err := NewPageRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	page := BuildCatalogPage(store, models.FilterCriteria{Status: models.StatusAvailable}, Overlay{})
	require.NoError(t, renderer.RenderPrint(&buf, page))

	html := buf.String()
	assert.Contains(t, html, "Mostrando 2 productos")
	assert.Contains(t, html, `data-code="D4"`)
	assert.NotContains(t, html, `data-code="B2"`)
	assert.NotContains(t, html, `id="filters"`)
}
