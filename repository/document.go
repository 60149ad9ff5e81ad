package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"aqua-store/models"
)

// DocumentFormat is the encoding of a products document
type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)

// DetectFormat picks the document format from a file name or URL path and
// an optional content type. JSON is the default.
func DetectFormat(name, contentType string) DocumentFormat {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "yaml") {
		return FormatYAML
	}
	if strings.Contains(ct, "json") {
		return FormatJSON
	}

	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeProducts decodes a products document: a top-level sequence of product records
func DecodeProducts(data []byte, format DocumentFormat) ([]models.Product, error) {
	var products []models.Product

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("failed to decode yaml document: %w", err)
		}
	default:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fmt.Errorf("failed to decode json document: empty document")
		}
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("failed to decode json document: %w", err)
		}
	}

	if products == nil {
		return nil, fmt.Errorf("document does not contain a product list")
	}
	return products, nil
}
