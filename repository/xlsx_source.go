package repository

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"aqua-store/models"
)

// xlsxColumns maps accepted header names to product fields
var xlsxColumns = map[string]string{
	"codigo":      "code",
	"código":      "code",
	"code":        "code",
	"nombre":      "name",
	"name":        "name",
	"descripcion": "description",
	"descripción": "description",
	"description": "description",
	"categoria":   "category",
	"categoría":   "category",
	"category":    "category",
	"precio":      "price",
	"price":       "price",
	"estado":      "status",
	"status":      "status",
	"fotos":       "images",
	"images":      "images",
}

// XLSXSource loads the catalog from the first sheet of an Excel workbook.
// The first row is a header; fotos holds comma or newline separated image references.
type XLSXSource struct {
	path   string
	open   func() (*excelize.File, error)
	logger *zap.Logger
}

// NewXLSXSource creates an XLSXSource reading the workbook at path
func NewXLSXSource(path string, logger *zap.Logger) *XLSXSource {
	return &XLSXSource{
		path:   path,
		open:   func() (*excelize.File, error) { return excelize.OpenFile(path) },
		logger: logger,
	}
}

// NewXLSXReaderSource creates an XLSXSource reading the workbook from r
func NewXLSXReaderSource(name string, r io.Reader, logger *zap.Logger) *XLSXSource {
	return &XLSXSource{
		path:   name,
		open:   func() (*excelize.File, error) { return excelize.OpenReader(r) },
		logger: logger,
	}
}

// Ensure XLSXSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*XLSXSource)(nil)

// Name returns the source description used in logs and errors
func (s *XLSXSource) Name() string {
	return "xlsx " + s.path
}

// Load parses the workbook
func (s *XLSXSource) Load(ctx context.Context) ([]models.Product, error) {
	f, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	columns := mapXLSXColumns(rows[0])
	for _, field := range []string{"code", "name", "price", "images"} {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("excel header is missing the %s column", field)
		}
	}
	s.logger.Debug("excel column mapping", zap.String("sheet", sheets[0]), zap.Any("columns", columns))

	products := make([]models.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2
		code := cell(row, columns, "code")
		if code == "" {
			continue
		}

		priceText := strings.ReplaceAll(cell(row, columns, "price"), ",", "")
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", rowNum, priceText, err)
		}

		products = append(products, models.Product{
			Code:        code,
			Name:        cell(row, columns, "name"),
			Description: cell(row, columns, "description"),
			Category:    cell(row, columns, "category"),
			Price:       price,
			Status:      cell(row, columns, "status"),
			Images:      splitImages(cell(row, columns, "images")),
		})
	}

	s.logger.Info("excel catalog parsed", zap.String("path", s.path), zap.Int("products", len(products)))
	return products, nil
}

func mapXLSXColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, name := range header {
		field, ok := xlsxColumns[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, seen := columns[field]; !seen {
			columns[field] = i
		}
	}
	return columns
}

func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitImages(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	images := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			images = append(images, p)
		}
	}
	return images
}
