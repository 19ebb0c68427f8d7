package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/service"
	"safelink/backend/internal/service/ai"
	"safelink/backend/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes {"error": message} with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid),
		errors.Is(err, ai.ErrInvalidProvider),
		errors.Is(err, ai.ErrMissingAPIKey),
		errors.Is(err, ai.ErrMissingModel),
		errors.Is(err, ai.ErrMissingBaseURL):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrUnauthorized):
		return Error(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrUpstream):
		return Error(c, http.StatusBadGateway, "upstream failed")
	default:
		logger.Error("unhandled service error", "module", "handler", "action", "respond", "resource", c.Path(), "result", "failed", "error", err)
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}

func badRequest(c echo.Context) error {
	return Error(c, http.StatusBadRequest, "invalid request")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
