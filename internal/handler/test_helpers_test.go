package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	return echo.New()
}

// newJSONRequest marshals body; a nil body sends no content type.
func newJSONRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

// newJSONRequestRaw sends body verbatim, for malformed payload cases.
func newJSONRequestRaw(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func newTestContext(e *echo.Echo, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func setPathParams(c echo.Context, params map[string]string) {
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

// setIDParam covers the common /:id routes.
func setIDParam(c echo.Context, id string) {
	setPathParams(c, map[string]string{"id": id})
}

func parseJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "failed to parse JSON response: %s", rec.Body.String())
}

func assertJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()
	require.Equal(t, expectedStatus, rec.Code, "unexpected status code: %s", rec.Body.String())
	if target != nil {
		parseJSONResponse(t, rec, target)
	}
}

// assertErrorResponse checks the {"error": msg} envelope every failure uses.
func assertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()
	var body map[string]any
	assertJSONResponse(t, rec, expectedStatus, &body)
	require.Equal(t, msg, body["error"])
}
