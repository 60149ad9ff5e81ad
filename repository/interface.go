package repository

import (
	"context"

	"aqua-store/models"
)

// CatalogSourceInterface defines the contract for loading the product catalog.
// Load is called once at startup; implementations return products in source order.
type CatalogSourceInterface interface {
	Load(ctx context.Context) ([]models.Product, error)
	Name() string
}
