package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/service"
)

// Catalog is everything the router needs from the message catalog.
type Catalog interface {
	service.MessageCatalog
	CatalogStatus
}

// RouterDeps groups the dependencies injected into the handlers.
type RouterDeps struct {
	Converter      Converter
	Catalog        Catalog
	DocsPage       []byte
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// SetupRouter creates the chi router for the application.
func SetupRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(deps.Logger))
	r.Use(RecovererMiddleware(deps.Catalog))

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	convertHandler := NewConvertHandler(deps.Converter, deps.Catalog)
	healthHandler := NewHealthHandler(deps.Catalog)
	docsHandler := NewDocsHandler(deps.DocsPage)

	r.Method(http.MethodGet, "/api/convert", convertHandler)
	r.Route("/api/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/convert", convertHandler)
	})

	r.Get("/health", healthHandler.Check)
	r.Method(http.MethodGet, "/", docsHandler)
	r.Method(http.MethodGet, "/docs", docsHandler)

	return r
}
