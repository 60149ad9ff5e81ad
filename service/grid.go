package service

import (
	"fmt"

	"aqua-store/models"
	"aqua-store/utils"
)

// CountLabel is the results counter text
func CountLabel(count int) string {
	if count == 1 {
		return "Mostrando 1 producto"
	}
	return fmt.Sprintf("Mostrando %d productos", count)
}

// BuildGrid projects products into the grid view. Select links keep the current filter.
func BuildGrid(products []models.Product, criteria models.FilterCriteria) models.GridView {
	grid := models.GridView{
		Count:      len(products),
		CountLabel: CountLabel(len(products)),
	}

	if len(products) == 0 {
		grid.Empty = true
		grid.Title = "😔 No se encontraron productos"
		grid.Hint = "Intenta cambiar los filtros de búsqueda"
		return grid
	}

	grid.Cards = make([]models.CardView, 0, len(products))
	for _, p := range products {
		grid.Cards = append(grid.Cards, models.CardView{
			Code:        p.Code,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Status:      p.Status,
			CoverURL:    ImageURL(p.CoverImage(), SizeThumb),
			Price:       utils.FormatMoney(p.Price),
			ImageCount:  len(p.Images),
			SelectURL:   PageURL(criteria, p.Code, 0),
		})
	}
	return grid
}

// ErrorGrid is the placeholder shown when the catalog failed to load
func ErrorGrid() models.GridView {
	return models.GridView{
		LoadFailed: true,
		Title:      "❌ Error al cargar los productos",
		Hint:       "Por favor, verifica que el catálogo existe y es válido, y recarga la página",
		CountLabel: CountLabel(0),
	}
}
