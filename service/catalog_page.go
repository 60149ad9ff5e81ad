package service

import (
	"aqua-store/models"
)

// BuildCatalogPage assembles the page view for the current request state.
// A failed load always yields the error grid and a closed overlay.
func BuildCatalogPage(store *CatalogStore, criteria models.FilterCriteria, overlay Overlay) models.CatalogPage {
	page := models.CatalogPage{
		Criteria: criteria,
		Statuses: models.Statuses,
		PrintURL: PrintURL(criteria),
		PDFURL:   PDFURL(criteria),
	}

	if store.Err() != nil {
		page.Grid = ErrorGrid()
		return page
	}

	page.Categories = store.Categories()
	page.Grid = BuildGrid(Apply(store.Products(), criteria), criteria)
	page.Overlay = overlay.View(criteria)
	return page
}
