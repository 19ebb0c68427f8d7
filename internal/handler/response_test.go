package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/handler"
	"safelink/backend/internal/service"
	"safelink/backend/internal/service/ai"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "wrapped_invalid", err: fmt.Errorf("%w: text is required", service.ErrInvalid), status: http.StatusBadRequest, expected: "invalid request"},
		{name: "ai_config", err: ai.ErrMissingAPIKey, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "unauthorized", err: service.ErrUnauthorized, status: http.StatusUnauthorized, expected: "unauthorized"},
		{name: "not_found", err: service.ErrNotFound, status: http.StatusNotFound, expected: "resource not found"},
		{name: "conflict", err: service.ErrConflict, status: http.StatusConflict, expected: "conflict"},
		{name: "term_conflict", err: &service.TermConflictError{}, status: http.StatusConflict, expected: "conflict"},
		{name: "upstream", err: service.ErrUpstream, status: http.StatusBadGateway, expected: "upstream failed"},
		{name: "default", err: errors.New("boom"), status: http.StatusInternalServerError, expected: "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			req := newJSONRequest(http.MethodGet, "/", nil)
			c, rec := newTestContext(e, req)

			err := handler.WriteServiceError(c, tc.err)
			require.NoError(t, err)

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.expected, resp["error"])
		})
	}
}

func TestErrorResponse(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.Error(c, http.StatusBadRequest, "bad request")
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "bad request", resp["error"])
}

func TestFormatTimePtr(t *testing.T) {
	require.Nil(t, handler.FormatTimePtr(nil))

	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.FixedZone("KST", 9*3600))
	got := handler.FormatTimePtr(&at)
	require.NotNil(t, got)
	require.Equal(t, "2024-05-01T00:30:00Z", *got)
}

func TestItoa(t *testing.T) {
	require.Equal(t, "123", handler.Itoa(123))
}
