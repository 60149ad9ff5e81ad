package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"aqua-store/app/controller"
	"aqua-store/app/router"
	"aqua-store/config"
	"aqua-store/db"
	"aqua-store/repository"
	"aqua-store/service"
)

// App is the initialized application
type App struct {
	Handler http.Handler
	Store   *service.CatalogStore

	conn *sql.DB
}

// Initialize builds the catalog source, loads the catalog and wires the HTTP handler.
// A catalog that fails to load is not fatal: the service starts and shows the error state.
func Initialize(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{}

	source, err := app.newSource(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize catalog source",
			zap.String("source", cfg.Catalog.Source),
			zap.Error(err),
		)
		source = repository.NewFailingSource(cfg.Catalog.Source, err)
	}

	// Initialize store
	store := service.NewCatalogStore(source, log)
	if err := store.Load(ctx); err != nil {
		log.Warn("starting with an unavailable catalog", zap.Error(err))
	}
	app.Store = store

	renderer, err := service.NewPageRenderer()
	if err != nil {
		app.Close()
		return nil, err
	}

	// Initialize services
	contact := service.NewContactAction(cfg.Contact.BaseURL, cfg.Contact.Phone)
	exporter := service.NewCatalogExporter(
		cfg.Server.BaseURL,
		cfg.Export.ChromePath,
		time.Duration(cfg.Export.TimeoutSeconds)*time.Second,
		log,
	)
	thumbs := service.NewThumbnailService(cfg.Server.StaticDir, log)

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(store, renderer, exporter, log),
		Contact: controller.NewContactController(store, contact, log),
		Product: controller.NewProductController(store, log),
		Image:   controller.NewImageController(thumbs, log),
	}

	app.Handler = router.SetupRoutes(controllers, store, cfg.Server.StaticDir, log)
	return app, nil
}

// newSource creates the catalog source selected by CATALOG_SOURCE
func (a *App) newSource(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.CatalogSourceInterface, error) {
	switch cfg.Catalog.Source {
	case config.SourceDocument:
		return repository.NewDocumentSource(cfg.Catalog.Path, log), nil
	case config.SourceXLSX:
		return repository.NewXLSXSource(cfg.Catalog.XLSXPath, log), nil
	case config.SourcePostgres:
		conn, err := db.Open(ctx, cfg.DB.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.conn = conn
		return repository.NewPostgresSource(conn, log), nil
	case config.SourceDrive:
		return repository.NewDriveSource(ctx, cfg.Catalog.CredentialsPath, cfg.Catalog.DriveFileID, log)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// Close releases the database connection, if any
func (a *App) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}
