package repository

import (
	"context"

	"aqua-store/models"
)

// MemorySource serves a fixed product list. Used for embedded demo data and tests.
type MemorySource struct {
	name     string
	products []models.Product
	err      error
}

// NewMemorySource creates a MemorySource returning a copy of products
func NewMemorySource(products ...models.Product) *MemorySource {
	return &MemorySource{name: "memory", products: products}
}

// NewFailingSource creates a source named name whose Load always fails with err.
// Used when the configured source cannot even be constructed.
func NewFailingSource(name string, err error) *MemorySource {
	return &MemorySource{name: name, err: err}
}

// Ensure MemorySource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*MemorySource)(nil)

func (s *MemorySource) Name() string {
	return s.name
}

func (s *MemorySource) Load(ctx context.Context) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
