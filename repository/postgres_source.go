package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"aqua-store/models"
)

const selectCatalogQuery = `
	SELECT
		code,
		name,
		COALESCE(description, '') AS description,
		COALESCE(category, '') AS category,
		price,
		COALESCE(status, '') AS status,
		COALESCE(images::text, '[]') AS images
	FROM products
	ORDER BY position ASC, code ASC
`

// PostgresSource loads the catalog from the products table
type PostgresSource struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresSource creates a PostgresSource
func NewPostgresSource(db *sql.DB, logger *zap.Logger) *PostgresSource {
	return &PostgresSource{db: db, logger: logger}
}

// Ensure PostgresSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*PostgresSource)(nil)

// Name returns the source description used in logs and errors
func (s *PostgresSource) Name() string {
	return "postgres products"
}

// Load queries every product row in catalog order
func (s *PostgresSource) Load(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, selectCatalogQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var images string
		if err := rows.Scan(&p.Code, &p.Name, &p.Description, &p.Category, &p.Price, &p.Status, &images); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.Images, err = decodeImageList(images)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", p.Code, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	s.logger.Info("catalog fetched from database", zap.Int("products", len(products)))
	return products, nil
}

// decodeImageList decodes the JSON array stored in the images column
func decodeImageList(raw string) ([]string, error) {
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil, fmt.Errorf("invalid images column: %w", err)
	}
	return images, nil
}
