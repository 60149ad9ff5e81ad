package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ThumbnailService resizes product images stored under the static directory
// and keeps the encoded results in memory.
type ThumbnailService struct {
	staticDir string
	logger    *zap.Logger

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewThumbnailService creates a ThumbnailService serving files below staticDir
func NewThumbnailService(staticDir string, logger *zap.Logger) *ThumbnailService {
	return &ThumbnailService{
		staticDir: staticDir,
		logger:    logger,
		cache:     make(map[string][]byte),
	}
}

// ValidSize reports whether size is a known thumbnail size
func ValidSize(size string) bool {
	return size == SizeThumb || size == SizeMedium
}

// Thumbnail returns the JPEG thumbnail of the image at relPath (relative to the static directory)
func (s *ThumbnailService) Thumbnail(size, relPath string) ([]byte, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("unknown thumbnail size %q", size)
	}
	fullPath, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	key := size + ":" + fullPath
	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return data, nil
	}

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	data, err = OptimizeImage(raw, size)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	s.logger.Debug("image thumbnail cached",
		zap.String("path", relPath),
		zap.String("size", size),
		zap.Int("bytes", len(data)),
	)
	return data, nil
}

// resolve maps relPath into the static directory, rejecting paths that escape it
func (s *ThumbnailService) resolve(relPath string) (string, error) {
	if relPath == "" || strings.Contains(relPath, "\\") {
		return "", ErrInvalidImagePath
	}
	for _, segment := range strings.Split(relPath, "/") {
		if segment == ".." {
			return "", ErrInvalidImagePath
		}
	}
	clean := strings.TrimPrefix(path.Clean("/"+relPath), "/")
	if clean == "" {
		return "", ErrInvalidImagePath
	}
	return filepath.Join(s.staticDir, filepath.FromSlash(clean)), nil
}

// IsNotFound reports whether err means the source image does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// OptimizeImage converts an image to JPEG, shrinking it to fit the size's
// max dimension while keeping the aspect ratio. Smaller images are not enlarged.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if size == SizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
