package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"rutakm/internal/contextutil"
	"rutakm/internal/routelog"
	"rutakm/internal/service"
	"rutakm/internal/week"
)

// HistoryHandler serves the weekly history, grouped by working day.
type HistoryHandler struct {
	routes service.RouteService
	logger *slog.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(routes service.RouteService) *HistoryHandler {
	return &HistoryHandler{
		routes: routes,
		logger: slog.Default(),
	}
}

// DayGroup is one working day's slice of the weekly history.
type DayGroup struct {
	Day    string            `json:"day"`
	Routes []routelog.Record `json:"routes"`
}

// HistoryResponse represents the HTTP response for the history view.
type HistoryResponse struct {
	Week string     `json:"week"`
	Days []DayGroup `json:"days"`
}

// ServeHTTP handles GET /api/routes?week=YYYY-MM-DD. A missing week
// parameter means the current week. All six working days are present in
// the response, empty ones with an empty routes array.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	weekKey := r.URL.Query().Get("week")
	if weekKey == "" {
		weekKey = week.Key(time.Now())
	}

	records, err := h.routes.History(ctx, weekKey)
	if err != nil {
		writeServiceError(w, ctx, err, "Failed to load history")
		return
	}

	resp := HistoryResponse{
		Week: weekKey,
		Days: make([]DayGroup, 0, len(week.WorkingDays)),
	}
	for _, day := range week.WorkingDays {
		group := DayGroup{Day: day, Routes: []routelog.Record{}}
		for _, rec := range records {
			if rec.Day == day {
				group.Routes = append(group.Routes, rec)
			}
		}
		resp.Days = append(resp.Days, group)
	}

	logger.DebugContext(ctx, "history served", "week", weekKey, "records", len(records))
	writeJSON(w, http.StatusOK, resp)
}
