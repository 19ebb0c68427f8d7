package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"safelink/backend/internal/broadcast"
	"safelink/backend/internal/config"
	"safelink/backend/internal/db"
	"safelink/backend/internal/handler"
	safehttp "safelink/backend/internal/http"
	"safelink/backend/internal/observe"
	"safelink/backend/internal/repository"
	"safelink/backend/internal/resilience"
	"safelink/backend/internal/scheduler"
	"safelink/backend/internal/service"
	"safelink/backend/internal/service/ai"
	"safelink/backend/internal/service/speech"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/network"
	"safelink/backend/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(cfg func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, WebSocket hub and bulletin scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cfg())
		},
	}
}

func serve(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer conn.Close()

	provider, err := observe.InitProvider(version)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := build(ctx, cfg, conn, provider.Metrics)
	if err != nil {
		return err
	}

	router := safehttp.NewRouter(app.handlers, app.auth, safehttp.Options{
		StaticDir:      cfg.StaticDir,
		EnableSwagger:  cfg.EnableSwagger,
		Metrics:        provider.Metrics,
		MetricsHandler: provider.Handler(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := app.hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("hub stopped", "module", "broadcast", "action", "run", "result", "failed", "error", err)
		}
	}()
	app.scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "server", "action", "start", "result", "ok", "addr", cfg.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutting down", "module", "server", "action", "stop", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			app.close()
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "module", "server", "action", "stop", "result", "failed", "error", err)
	}
	cancel()
	app.close()
	if err := provider.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown failed", "module", "server", "action", "stop", "resource", "metrics", "result", "failed", "error", err)
	}
	logger.Info("server stopped", "module", "server", "action", "stop", "result", "ok")
	return nil
}

type application struct {
	handlers  safehttp.Handlers
	auth      service.AuthService
	hub       *broadcast.Hub
	relay     *broadcast.RedisRelay
	scheduler *scheduler.Scheduler
}

func (a *application) close() {
	a.scheduler.Stop()
	if a.relay != nil {
		if err := a.relay.Close(); err != nil {
			logger.Warn("redis close failed", "module", "broadcast", "action", "stop", "resource", "redis", "result", "failed", "error", err)
		}
	}
}

func build(ctx context.Context, cfg config.Config, conn *sql.DB, metrics *observe.Metrics) (*application, error) {
	settingsRepo := repository.NewSettingsRepository(conn)
	glossaryRepo := repository.NewGlossaryRepository(conn)
	cacheRepo := repository.NewTranslationCacheRepository(conn)
	workerRepo := repository.NewWorkerMessageRepository(conn)
	tbmRepo := repository.NewTBMRepository(conn)
	savedRepo := repository.NewSavedMessageRepository(conn)
	bulletinRepo := repository.NewBulletinRepository(conn)

	limiter := ai.NewRateLimiter(ai.DefaultRateLimit)
	settingsSvc := service.NewSettingsService(settingsRepo, limiter)
	if stored, err := settingsSvc.GetAISettings(ctx); err == nil && stored.RateLimit > 0 {
		limiter.SetLimit(stored.RateLimit)
	}
	clients := network.NewClientFactory(settingsSvc, settingsSvc)

	authSvc := service.NewAuthService(settingsRepo)
	glossarySvc := service.NewGlossaryService(glossaryRepo)
	translationSvc := service.NewTranslationService(glossarySvc, cacheRepo, settingsSvc, limiter,
		service.WithEnvGemini(cfg.GeminiAPIKey, cfg.GeminiModel),
		service.WithTranslationMetrics(metrics),
		service.WithBreakerConfig(resilience.BreakerConfig{
			Name:         "translation",
			MaxFailures:  3,
			ResetTimeout: 30 * time.Second,
			HalfOpenMax:  1,
		}),
	)

	var synths []speech.Synthesizer
	if cfg.ElevenLabsAPIKey != "" {
		synths = append(synths, speech.NewElevenLabs(cfg.ElevenLabsAPIKey, "", clients))
	}
	if cfg.GeminiAPIKey != "" {
		tts, err := speech.NewGeminiTTS(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			logger.Warn("gemini tts disabled", "module", "speech", "action", "init", "result", "failed", "error", err)
		} else {
			synths = append(synths, tts)
		}
	}
	speechSvc := service.NewSpeechService(metrics, resilience.BreakerConfig{
		Name:         "speech",
		MaxFailures:  3,
		ResetTimeout: time.Minute,
		HalfOpenMax:  1,
	}, synths...)

	hubOpts := []broadcast.Option{broadcast.WithMetrics(metrics)}
	var relay *broadcast.RedisRelay
	if cfg.RedisURL != "" {
		r, err := broadcast.NewRedisRelay(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		relay = r
		hubOpts = append(hubOpts, broadcast.WithRelay(r))
	}
	hub := broadcast.NewHub(hubOpts...)

	workerSvc := service.NewWorkerMessageService(workerRepo, translationSvc, hub)
	tbmSvc := service.NewTBMService(tbmRepo, translationSvc, hub)
	broadcastSvc := service.NewBroadcastService(translationSvc, hub)
	savedSvc := service.NewSavedMessageService(savedRepo, glossarySvc, broadcastSvc)
	if err := savedSvc.EnsurePresets(ctx); err != nil {
		logger.Warn("seed presets failed", "module", "service", "action", "seed", "resource", "saved_message", "result", "failed", "error", err)
	}
	bulletinSvc := service.NewBulletinService(bulletinRepo, clients)

	logger.Info("services ready", "module", "server", "action", "init", "result", "ok",
		"speech", speechSvc.Providers(), "redis", relay != nil)

	return &application{
		handlers: safehttp.Handlers{
			Auth:          handler.NewAuthHandler(authSvc),
			Glossary:      handler.NewGlossaryHandler(glossarySvc),
			Translate:     handler.NewTranslateHandler(translationSvc, settingsSvc),
			Speech:        handler.NewSpeechHandler(speechSvc),
			Catalog:       handler.NewCatalogHandler(service.NewCatalogService()),
			WorkerMessage: handler.NewWorkerMessageHandler(workerSvc),
			TBM:           handler.NewTBMHandler(tbmSvc),
			SavedMessage:  handler.NewSavedMessageHandler(savedSvc),
			Broadcast:     handler.NewBroadcastHandler(broadcastSvc, authSvc, hub),
			Bulletin:      handler.NewBulletinHandler(bulletinSvc),
			Settings:      handler.NewSettingsHandler(settingsSvc),
		},
		auth:      authSvc,
		hub:       hub,
		relay:     relay,
		scheduler: scheduler.New(bulletinSvc, cfg.BulletinInterval),
	}, nil
}
