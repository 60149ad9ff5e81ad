package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqua-store/models"
)

func TestCountLabel(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "Mostrando 0 productos"},
		{1, "Mostrando 1 producto"},
		{2, "Mostrando 2 productos"},
		{120, "Mostrando 120 productos"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountLabel(tt.count))
	}
}

func TestBuildGrid(t *testing.T) {
	criteria := models.FilterCriteria{Category: "Chairs"}
	grid := BuildGrid(Apply(sampleCatalog(), criteria), criteria)

	assert.False(t, grid.Empty)
	assert.False(t, grid.LoadFailed)
	assert.Equal(t, 2, grid.Count)
	assert.Equal(t, "Mostrando 2 productos", grid.CountLabel)
	require.Len(t, grid.Cards, 2)

	card := grid.Cards[0]
	assert.Equal(t, "P001", card.Code)
	assert.Equal(t, "Silla Nórdica", card.Name)
	assert.Equal(t, "Chairs", card.Category)
	assert.Equal(t, models.StatusAvailable, card.Status)
	assert.Equal(t, "$1,200", card.Price)
	assert.Equal(t, 3, card.ImageCount)
	assert.Equal(t, "/thumbs/thumb/img/p001-1.jpg", card.CoverURL)
	assert.Equal(t, "/?category=Chairs&product=P001", card.SelectURL)
}

func TestBuildGridKeepsAbsoluteCover(t *testing.T) {
	grid := BuildGrid(Apply(sampleCatalog(), models.FilterCriteria{Search: "acuario"}), models.FilterCriteria{})

	require.Len(t, grid.Cards, 1)
	assert.Equal(t, "https://cdn.example.com/c3.jpg", grid.Cards[0].CoverURL)
	assert.Equal(t, "$320,000", grid.Cards[0].Price)
}

func TestBuildGridEmpty(t *testing.T) {
	grid := BuildGrid([]models.Product{}, models.FilterCriteria{Search: "nothing"})

	assert.True(t, grid.Empty)
	assert.False(t, grid.LoadFailed)
	assert.Empty(t, grid.Cards)
	assert.Equal(t, "😔 No se encontraron productos", grid.Title)
	assert.Equal(t, "Intenta cambiar los filtros de búsqueda", grid.Hint)
	assert.Equal(t, "Mostrando 0 productos", grid.CountLabel)
}

func TestErrorGrid(t *testing.T) {
	grid := ErrorGrid()

	assert.True(t, grid.LoadFailed)
	assert.False(t, grid.Empty)
	assert.Empty(t, grid.Cards)
	assert.Equal(t, "❌ Error al cargar los productos", grid.Title)
	assert.NotEmpty(t, grid.Hint)
}
