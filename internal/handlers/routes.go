package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rutakm/internal/contextutil"
	"rutakm/internal/service"
)

// RoutesHandler handles route registration and deletion.
type RoutesHandler struct {
	routes service.RouteService
	logger *slog.Logger
}

// NewRoutesHandler creates a new RoutesHandler.
func NewRoutesHandler(routes service.RouteService) *RoutesHandler {
	return &RoutesHandler{
		routes: routes,
		logger: slog.Default(),
	}
}

// RegisterRequest represents the HTTP payload for registering a route.
type RegisterRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Incidence   string `json:"incidence,omitempty"`
}

// Register handles POST /api/routes: resolve the distance and prepend a
// new record to the history.
func (h *RoutesHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.routes.Register(ctx, service.RegisterRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Incidence:   req.Incidence,
	})
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to register route")
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// Delete handles DELETE /api/routes/{id}. Deleting an unknown id is a
// no-op and still answers 204.
func (h *RoutesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Route id is required")
		return
	}

	if err := h.routes.Delete(ctx, id); err != nil {
		writeServiceError(w, ctx, err, "Failed to delete route")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
