package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "safelink/backend/docs"
	"safelink/backend/internal/handler"
	"safelink/backend/internal/observe"
	"safelink/backend/internal/service"
)

// Handlers groups everything mounted under /api.
type Handlers struct {
	Auth          *handler.AuthHandler
	Glossary      *handler.GlossaryHandler
	Translate     *handler.TranslateHandler
	Speech        *handler.SpeechHandler
	Catalog       *handler.CatalogHandler
	WorkerMessage *handler.WorkerMessageHandler
	TBM           *handler.TBMHandler
	SavedMessage  *handler.SavedMessageHandler
	Broadcast     *handler.BroadcastHandler
	Bulletin      *handler.BulletinHandler
	Settings      *handler.SettingsHandler
}

type Options struct {
	StaticDir     string
	EnableSwagger bool
	// Metrics records request durations; nil disables it.
	Metrics *observe.Metrics
	// MetricsHandler is served at /metrics when set.
	MetricsHandler nethttp.Handler
}

func NewRouter(h Handlers, authService service.AuthService, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())
	e.Use(observe.EchoMiddleware(opts.Metrics))

	if opts.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(nethttp.StatusNoContent)
	})

	api := e.Group("/api")
	protected := api.Group("", JWTAuthMiddleware(authService))

	if h.Auth != nil {
		h.Auth.RegisterRoutes(api)
		h.Auth.RegisterProtectedRoutes(protected)
	}
	if h.Glossary != nil {
		h.Glossary.RegisterRoutes(api)
		h.Glossary.RegisterProtectedRoutes(protected)
	}
	if h.Translate != nil {
		h.Translate.RegisterRoutes(api)
		h.Translate.RegisterProtectedRoutes(protected)
	}
	if h.Speech != nil {
		h.Speech.RegisterRoutes(api)
	}
	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(api)
	}
	if h.WorkerMessage != nil {
		h.WorkerMessage.RegisterRoutes(api)
		h.WorkerMessage.RegisterProtectedRoutes(protected)
	}
	if h.TBM != nil {
		h.TBM.RegisterRoutes(api)
		h.TBM.RegisterProtectedRoutes(protected)
	}
	if h.SavedMessage != nil {
		h.SavedMessage.RegisterProtectedRoutes(protected)
	}
	if h.Broadcast != nil {
		h.Broadcast.RegisterRoutes(api)
		h.Broadcast.RegisterProtectedRoutes(protected)
	}
	if h.Bulletin != nil {
		h.Bulletin.RegisterRoutes(api)
		h.Bulletin.RegisterProtectedRoutes(protected)
	}
	if h.Settings != nil {
		h.Settings.RegisterRoutes(protected)
	}

	registerStatic(e, opts.StaticDir)
	return e
}
