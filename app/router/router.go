package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"aqua-store/app/controller"
	"aqua-store/logger"
	"aqua-store/service"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Contact *controller.ContactController
	Product *controller.ProductController
	Image   *controller.ImageController
}

// pingHandler handles GET /ping
func pingHandler(store *service.CatalogStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if store.Err() != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"degraded"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}
}

// SetupRoutes builds the HTTP handler
func SetupRoutes(controllers *Controllers, store *service.CatalogStore, staticDir string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Ping endpoint
	r.Get("/ping", pingHandler(store))

	// Catalog page, print view and export
	r.Get("/", controllers.Catalog.Index)
	r.Get("/catalog/print", controllers.Catalog.Print)
	r.Get("/catalog.pdf", controllers.Catalog.ExportPDF)

	// Contact hand-off
	r.Get("/contact/{code}", controllers.Contact.Redirect)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.Product.ListProducts)
		r.Get("/products/{code}", controllers.Product.GetProduct)
		r.Get("/categories", controllers.Product.ListCategories)
	})

	// Resized images and static files
	r.Get("/thumbs/{size}/*", controllers.Image.Thumbnail)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return r
}
