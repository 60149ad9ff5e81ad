package controller

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"aqua-store/models"
	"aqua-store/service"
)

// ProductController exposes the catalog as JSON
type ProductController struct {
	store  *service.CatalogStore
	logger *zap.Logger
}

// NewProductController creates a new ProductController
func NewProductController(store *service.CatalogStore, logger *zap.Logger) *ProductController {
	return &ProductController{
		store:  store,
		logger: logger,
	}
}

// ListProductsResponse is the body of GET /api/products
type ListProductsResponse struct {
	Count    int              `json:"count"`
	Products []models.Product `json:"products"`
}

// ListProducts handles GET /api/products?q=&category=&status=
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if !c.available(w) {
		return
	}

	products := service.Apply(c.store.Products(), criteriaFromRequest(r))
	writeJSON(w, c.logger, http.StatusOK, ListProductsResponse{
		Count:    len(products),
		Products: products,
	})
}

// GetProduct handles GET /api/products/{code}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	if !c.available(w) {
		return
	}

	product, err := c.store.Get(chi.URLParam(r, "code"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			writeJSON(w, c.logger, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, c.logger, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, c.logger, http.StatusOK, product)
}

// ListCategories handles GET /api/categories
func (c *ProductController) ListCategories(w http.ResponseWriter, r *http.Request) {
	if !c.available(w) {
		return
	}
	writeJSON(w, c.logger, http.StatusOK, c.store.Categories())
}

// available writes a 503 and returns false when the catalog failed to load
func (c *ProductController) available(w http.ResponseWriter) bool {
	if err := c.store.Err(); err != nil {
		writeJSON(w, c.logger, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return false
	}
	return true
}
