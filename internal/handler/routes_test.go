package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"safelink/backend/internal/handler"
)

func assertRoute(t *testing.T, routes []*echo.Route, method, path string) {
	t.Helper()
	for _, r := range routes {
		if r.Method == method && r.Path == path {
			return
		}
	}
	t.Fatalf("route not found: %s %s", method, path)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	e := newTestEcho()
	public := e.Group("")
	protected := e.Group("")

	authHandler := handler.NewAuthHandler(nil)
	authHandler.RegisterRoutes(public)
	authHandler.RegisterProtectedRoutes(protected)

	glossaryHandler := handler.NewGlossaryHandler(nil)
	glossaryHandler.RegisterRoutes(public)
	glossaryHandler.RegisterProtectedRoutes(protected)

	translateHandler := handler.NewTranslateHandler(nil, nil)
	translateHandler.RegisterRoutes(public)
	translateHandler.RegisterProtectedRoutes(protected)

	handler.NewSpeechHandler(nil).RegisterRoutes(public)
	handler.NewCatalogHandler(nil).RegisterRoutes(public)

	workerHandler := handler.NewWorkerMessageHandler(nil)
	workerHandler.RegisterRoutes(public)
	workerHandler.RegisterProtectedRoutes(protected)

	tbmHandler := handler.NewTBMHandler(nil)
	tbmHandler.RegisterRoutes(public)
	tbmHandler.RegisterProtectedRoutes(protected)

	handler.NewSavedMessageHandler(nil).RegisterProtectedRoutes(protected)

	broadcastHandler := handler.NewBroadcastHandler(nil, nil, nil)
	broadcastHandler.RegisterRoutes(public)
	broadcastHandler.RegisterProtectedRoutes(protected)

	bulletinHandler := handler.NewBulletinHandler(nil)
	bulletinHandler.RegisterRoutes(public)
	bulletinHandler.RegisterProtectedRoutes(protected)

	handler.NewSettingsHandler(nil).RegisterRoutes(protected)

	routes := e.Routes()

	assertRoute(t, routes, http.MethodGet, "/auth/status")
	assertRoute(t, routes, http.MethodPost, "/auth/register")
	assertRoute(t, routes, http.MethodPost, "/auth/login")
	assertRoute(t, routes, http.MethodPost, "/auth/logout")
	assertRoute(t, routes, http.MethodGet, "/auth/me")
	assertRoute(t, routes, http.MethodPut, "/auth/profile")

	assertRoute(t, routes, http.MethodGet, "/glossary")
	assertRoute(t, routes, http.MethodPost, "/glossary")
	assertRoute(t, routes, http.MethodDelete, "/glossary/:slang")
	assertRoute(t, routes, http.MethodPost, "/glossary/standardize")

	assertRoute(t, routes, http.MethodGet, "/languages")
	assertRoute(t, routes, http.MethodPost, "/translate")
	assertRoute(t, routes, http.MethodPost, "/translate/batch")
	assertRoute(t, routes, http.MethodDelete, "/translate/cache")
	assertRoute(t, routes, http.MethodPost, "/conversation/turn")

	assertRoute(t, routes, http.MethodPost, "/tts")
	assertRoute(t, routes, http.MethodGet, "/quick-commands")
	assertRoute(t, routes, http.MethodGet, "/sites")

	assertRoute(t, routes, http.MethodPost, "/worker/message")
	assertRoute(t, routes, http.MethodGet, "/worker/message")
	assertRoute(t, routes, http.MethodPut, "/worker/message/:id/read")
	assertRoute(t, routes, http.MethodPut, "/worker/message/read-all")

	assertRoute(t, routes, http.MethodPost, "/tbm")
	assertRoute(t, routes, http.MethodGet, "/tbm/status")
	assertRoute(t, routes, http.MethodPost, "/tbm/:id/sign")
	assertRoute(t, routes, http.MethodPost, "/tbm/:id/close")

	assertRoute(t, routes, http.MethodGet, "/messages")
	assertRoute(t, routes, http.MethodPost, "/messages")
	assertRoute(t, routes, http.MethodGet, "/messages/:id")
	assertRoute(t, routes, http.MethodPut, "/messages/:id")
	assertRoute(t, routes, http.MethodDelete, "/messages/:id")
	assertRoute(t, routes, http.MethodPost, "/messages/:id/broadcast")

	assertRoute(t, routes, http.MethodPost, "/broadcast")
	assertRoute(t, routes, http.MethodGet, "/broadcast/ws")
	assertRoute(t, routes, http.MethodGet, "/broadcast/status")

	assertRoute(t, routes, http.MethodGet, "/bulletins")
	assertRoute(t, routes, http.MethodGet, "/bulletins/sources")
	assertRoute(t, routes, http.MethodPost, "/bulletins/sources")
	assertRoute(t, routes, http.MethodDelete, "/bulletins/sources/:id")
	assertRoute(t, routes, http.MethodPost, "/bulletins/sources/:id/refresh")
	assertRoute(t, routes, http.MethodPost, "/bulletins/refresh")
	assertRoute(t, routes, http.MethodGet, "/bulletins/refresh/status")

	assertRoute(t, routes, http.MethodGet, "/settings/ai")
	assertRoute(t, routes, http.MethodPut, "/settings/ai")
	assertRoute(t, routes, http.MethodPost, "/settings/ai/test")
	assertRoute(t, routes, http.MethodGet, "/settings/network")
	assertRoute(t, routes, http.MethodPut, "/settings/network")
	assertRoute(t, routes, http.MethodPost, "/settings/network/test")
}
