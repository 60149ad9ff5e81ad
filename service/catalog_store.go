package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"aqua-store/models"
	"aqua-store/repository"
)

// CatalogStore holds the product catalog. It is populated once by Load and
// never mutated afterwards, so reads need no locking.
type CatalogStore struct {
	source repository.CatalogSourceInterface
	logger *zap.Logger

	once       sync.Once
	products   []models.Product
	index      map[string]int
	categories []string
	err        error
}

// NewCatalogStore creates an empty store backed by source
func NewCatalogStore(source repository.CatalogSourceInterface, logger *zap.Logger) *CatalogStore {
	return &CatalogStore{
		source: source,
		logger: logger,
	}
}

// Load fetches the catalog. Only the first call does any work; later calls
// return the first result. On failure the store stays empty and the
// returned *LoadError is kept for Err.
func (s *CatalogStore) Load(ctx context.Context) error {
	s.once.Do(func() {
		s.err = s.load(ctx)
	})
	return s.err
}

func (s *CatalogStore) load(ctx context.Context) error {
	s.logger.Info("loading catalog", zap.String("source", s.source.Name()))

	products, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("error loading products", zap.String("source", s.source.Name()), zap.Error(err))
		return &LoadError{Source: s.source.Name(), Err: err}
	}

	index, err := validateCatalog(products)
	if err != nil {
		s.logger.Error("catalog rejected", zap.String("source", s.source.Name()), zap.Error(err))
		return &LoadError{Source: s.source.Name(), Err: err}
	}

	s.products = products
	s.index = index
	s.categories = distinctCategories(products)

	s.logger.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Int("categories", len(s.categories)),
	)
	return nil
}

// validateCatalog checks the record invariants and builds the code index
func validateCatalog(products []models.Product) (map[string]int, error) {
	index := make(map[string]int, len(products))
	for i, p := range products {
		if p.Code == "" {
			return nil, fmt.Errorf("product at position %d has an empty code", i)
		}
		if prev, dup := index[p.Code]; dup {
			return nil, fmt.Errorf("duplicate product code %q at positions %d and %d", p.Code, prev, i)
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("product %q has no images", p.Code)
		}
		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, fmt.Errorf("product %q has an invalid price %v", p.Code, p.Price)
		}
		index[p.Code] = i
	}
	return index, nil
}

func distinctCategories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}

// Err returns the load error, or nil when the catalog loaded
func (s *CatalogStore) Err() error {
	return s.err
}

// Products returns a copy of the catalog in source order
func (s *CatalogStore) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products
func (s *CatalogStore) Len() int {
	return len(s.products)
}

// FindByCode looks a product up by its code
func (s *CatalogStore) FindByCode(code string) (models.Product, bool) {
	i, ok := s.index[code]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Categories returns the distinct categories, sorted
func (s *CatalogStore) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Get is FindByCode returning ErrProductNotFound on a miss
func (s *CatalogStore) Get(code string) (models.Product, error) {
	p, ok := s.FindByCode(code)
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, code)
	}
	return p, nil
}
