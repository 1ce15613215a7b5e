package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"rutakm/internal/contextutil"
	"rutakm/internal/service"
	"rutakm/internal/week"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the weekly log as an xlsx download.
type ExportHandler struct {
	routes service.RouteService
	logger *slog.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(routes service.RouteService) *ExportHandler {
	return &ExportHandler{
		routes: routes,
		logger: slog.Default(),
	}
}

// ServeHTTP handles GET /api/export?week=YYYY-MM-DD. A week without
// records answers 404 and produces no file.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	weekKey := r.URL.Query().Get("week")
	if weekKey == "" {
		weekKey = week.Key(time.Now())
	}

	filename, data, err := h.routes.Export(ctx, weekKey)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to export week")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.ErrorContext(ctx, "failed to write export body", "error", err)
	}
}
