package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"aqua-store/service"
)

// ImageController serves resized product images
type ImageController struct {
	thumbs *service.ThumbnailService
	logger *zap.Logger
}

// NewImageController creates a new ImageController
func NewImageController(thumbs *service.ThumbnailService, logger *zap.Logger) *ImageController {
	return &ImageController{
		thumbs: thumbs,
		logger: logger,
	}
}

// Thumbnail handles GET /thumbs/{size}/*
func (c *ImageController) Thumbnail(w http.ResponseWriter, r *http.Request) {
	size := chi.URLParam(r, "size")
	if !service.ValidSize(size) {
		http.Error(w, "Invalid size. Valid sizes: thumb, medium", http.StatusBadRequest)
		return
	}

	relPath := chi.URLParam(r, "*")
	data, err := c.thumbs.Thumbnail(size, relPath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidImagePath):
			http.Error(w, "Invalid image path", http.StatusBadRequest)
		case service.IsNotFound(err):
			http.Error(w, "Image not found", http.StatusNotFound)
		default:
			c.logger.Error("error optimizing image", zap.String("path", relPath), zap.Error(err))
			http.Error(w, "Failed to process image", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		c.logger.Error("error writing image response", zap.Error(err))
	}
}
