package service

import (
	"strings"

	"golang.org/x/text/cases"

	"aqua-store/models"
)

// Apply returns the products matching every set constraint of criteria, in
// catalog order. It never re-sorts and returns an empty slice when nothing matches.
func Apply(products []models.Product, criteria models.FilterCriteria) []models.Product {
	fold := cases.Fold()
	term := strings.TrimSpace(criteria.Search)
	if term != "" {
		term = fold.String(term)
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if criteria.Category != "" && p.Category != criteria.Category {
			continue
		}
		if criteria.Status != "" && p.Status != criteria.Status {
			continue
		}
		if term != "" && !matchesSearch(fold, p, term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// matchesSearch reports whether the folded term occurs in name, description, code or category
func matchesSearch(fold cases.Caser, p models.Product, term string) bool {
	for _, field := range [...]string{p.Name, p.Description, p.Code, p.Category} {
		if strings.Contains(fold.String(field), term) {
			return true
		}
	}
	return false
}
