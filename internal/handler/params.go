package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// parseIDParam reads a snowflake path parameter. IDs travel as strings in
// JSON, so the path form is the same decimal text.
func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
}

// queryFlag reads an optional boolean filter such as ?unread=true. A
// missing parameter is false; ok is false only for an unparsable value.
func queryFlag(c echo.Context, name string) (value bool, ok bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// queryLimit reads an optional non-negative ?limit=. Zero lets the service
// pick its default.
func queryLimit(c echo.Context) (int, bool) {
	raw := strings.TrimSpace(c.QueryParam("limit"))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
