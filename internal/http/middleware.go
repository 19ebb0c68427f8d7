package http

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"safelink/backend/internal/handler"
	"safelink/backend/internal/service"
	"safelink/backend/pkg/logger"
)

const AuthCookieName = handler.AuthCookieName

// JWTAuthMiddleware admits requests carrying a valid manager token, either as
// a Bearer header or in the auth cookie.
func JWTAuthMiddleware(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				if cookie, err := c.Cookie(AuthCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}

			ok, err := auth.ValidateToken(token)
			if err != nil || !ok {
				if err != nil {
					logger.Debug("token rejected", "module", "http", "action", "authenticate", "resource", "token", "result", "failed", "error", err)
				}
				return handler.Error(c, nethttp.StatusUnauthorized, "unauthorized")
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequestIDMiddleware tags each request with a uuid, keeping one supplied by
// a proxy.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelDebug
			result := "ok"
			switch {
			case v.Status >= 500:
				level = slog.LevelError
				result = "failed"
			case v.Status >= 400:
				level = slog.LevelWarn
				result = "rejected"
			}
			if !logger.Enabled(level) {
				return nil
			}
			args := []any{
				"module", "http",
				"action", v.Method,
				"resource", v.URI,
				"result", result,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				args = append(args, "error", v.Error)
			}
			logger.L().Log(c.Request().Context(), level, "http request", args...)
			return nil
		},
	})
}
