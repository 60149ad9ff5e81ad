package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"aqua-store/service"
)

// ContactController hands the visitor off to the messaging service
type ContactController struct {
	store   *service.CatalogStore
	contact *service.ContactAction
	logger  *zap.Logger
}

// NewContactController creates a new ContactController
func NewContactController(store *service.CatalogStore, contact *service.ContactAction, logger *zap.Logger) *ContactController {
	return &ContactController{
		store:   store,
		contact: contact,
		logger:  logger,
	}
}

// Redirect handles GET /contact/{code}. An unknown code goes back to the grid.
func (c *ContactController) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	overlay := service.Overlay{}.Open(c.store, code)
	link, ok := c.contact.URLFor(overlay)
	if !ok {
		c.logger.Debug("contact requested for unknown product", zap.String("code", code))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	c.logger.Info("contact hand-off", zap.String("code", code))
	http.Redirect(w, r, link, http.StatusFound)
}
