package handlers

import (
	"log/slog"
	"net/http"

	"rutakm/internal/service"
)

// WeeksHandler serves the week selector list.
type WeeksHandler struct {
	routes service.RouteService
	logger *slog.Logger
}

// NewWeeksHandler creates a new WeeksHandler.
func NewWeeksHandler(routes service.RouteService) *WeeksHandler {
	return &WeeksHandler{
		routes: routes,
		logger: slog.Default(),
	}
}

// WeeksResponse represents the HTTP response for the week selector.
type WeeksResponse struct {
	Weeks []service.WeekOption `json:"weeks"`
}

// ServeHTTP handles GET /api/weeks: the most recent selectable weeks,
// current week first.
func (h *WeeksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	weeks, err := h.routes.Weeks(ctx)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to list weeks")
		return
	}

	writeJSON(w, http.StatusOK, WeeksResponse{Weeks: weeks})
}
