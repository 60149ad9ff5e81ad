package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"aqua-store/models"
)

// DocumentSource loads the catalog from a JSON or YAML document stored in
// a local file or served over HTTP.
type DocumentSource struct {
	location string
	client   *http.Client
	logger   *zap.Logger
}

// NewDocumentSource creates a DocumentSource. location is a file path or an http(s) URL.
func NewDocumentSource(location string, logger *zap.Logger) *DocumentSource {
	return &DocumentSource{
		location: location,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// Ensure DocumentSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*DocumentSource)(nil)

// Name returns the source description used in logs and errors
func (s *DocumentSource) Name() string {
	return "document " + s.location
}

// Load reads and decodes the document
func (s *DocumentSource) Load(ctx context.Context) ([]models.Product, error) {
	if isHTTPURL(s.location) {
		return s.fetch(ctx)
	}

	data, err := os.ReadFile(s.location)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	s.logger.Debug("catalog document read", zap.String("path", s.location), zap.Int("bytes", len(data)))

	return DecodeProducts(data, DetectFormat(s.location, ""))
}

func (s *DocumentSource) fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	s.logger.Debug("catalog document fetched",
		zap.String("url", s.location),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
	)

	return DecodeProducts(data, DetectFormat(req.URL.Path, resp.Header.Get("Content-Type")))
}

func isHTTPURL(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
