// Package http wires the chi router, middleware, and the embedded
// single-page UI over the route log API.
package http

import (
	"database/sql"
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rutakm/internal/handlers"
	"rutakm/internal/routelog"
	"rutakm/internal/service"
)

//go:embed index.html
var indexHTML string

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Routes service.RouteService
	DB     *sql.DB
	Store  *routelog.Store
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(CORS)

	routesHandler := handlers.NewRoutesHandler(deps.Routes)
	historyHandler := handlers.NewHistoryHandler(deps.Routes)
	weeksHandler := handlers.NewWeeksHandler(deps.Routes)
	exportHandler := handlers.NewExportHandler(deps.Routes)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Store)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/routes", routesHandler.Register)
		r.Get("/routes", historyHandler.ServeHTTP)
		r.Delete("/routes/{id}", routesHandler.Delete)
		r.Get("/weeks", weeksHandler.ServeHTTP)
		r.Get("/export", exportHandler.ServeHTTP)
		r.Get("/health", healthHandler.ServeHTTP)
	})

	// Serve the UI page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(indexHTML))
	})

	return r
}
