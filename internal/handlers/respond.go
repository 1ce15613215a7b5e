package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rutakm/internal/contextutil"
	"rutakm/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// User-facing messages. The resolution failure message deliberately does
// not distinguish a transport failure from an unparseable reply.
const (
	msgCouldNotCalculate = "No se pudo calcular la ruta. Inténtalo de nuevo."
	msgNoWeekData        = "No hay datos en esta semana."
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// writeServiceError maps service errors to appropriate HTTP status codes
// and responses.
func writeServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	logger.ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Validation error: %s", validationErr.Error()))
		return
	}

	if errors.Is(err, service.ErrNoRoutes) {
		writeError(w, http.StatusNotFound, msgNoWeekData)
		return
	}

	// One generic message for both transport failures and unparseable
	// replies; retrying the same action is the recovery path.
	if errors.Is(err, service.ErrNoValidResponse) || errors.Is(err, service.ErrExternalService) {
		writeError(w, http.StatusBadGateway, msgCouldNotCalculate)
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}
