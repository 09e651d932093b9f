package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-pill-timer/internal/app"
	"github.com/KasumiMercury/primind-pill-timer/internal/config"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/handler"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/notification"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-pill-timer/internal/infra/repository"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/logging"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/metrics"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/middleware"
	"github.com/KasumiMercury/primind-pill-timer/internal/observability/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(logging.NewLogger(os.Stdout, "info"))

	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env file", "error", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	slog.SetDefault(logging.NewLogger(os.Stdout, cfg.Log.Level))

	ctx := context.Background()

	tracerProvider := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Observability.Environment,
		SampleRatio:    cfg.Observability.TraceSampleRatio,
	})
	meterProvider := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Observability.Environment,
	})
	defer shutdownProviders(tracerProvider, meterProvider)

	meter := meterProvider.Meter(cfg.Observability.ServiceName)

	httpMetrics, err := metrics.NewHTTPMetrics(meter)
	if err != nil {
		slog.Error("failed to create http metrics", "error", err)
		return 1
	}

	notificationMetrics, err := metrics.NewNotificationMetrics(meter)
	if err != nil {
		slog.Error("failed to create notification metrics", "error", err)
		return 1
	}

	db, err := initDatabase(cfg.Database, cfg.Log)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}

	broker, err := initBroker(ctx, cfg.Store)
	if err != nil {
		slog.Error("failed to initialize broker", "error", err)
		return 1
	}

	permission, err := notification.ParsePermission(cfg.Notification.Permission)
	if err != nil {
		slog.Error("invalid notification permission", "error", err)
		return 1
	}

	scheduler := notification.NewTimerScheduler(broker.NotificationPublisher, notification.TimerSchedulerConfig{
		Topic:      pubsub.NotificationTopic(cfg.Store.Namespace),
		Permission: permission,
		Metrics:    notificationMetrics,
	})

	feed := repository.NewChangeFeed(broker.ChangePublisher, broker.Subscriber, cfg.Store.Namespace)

	session := app.NewSession(
		app.SessionDeps{
			Events:    repository.NewEventRepository(db, feed),
			Cooldown:  repository.NewCooldownRepository(db, feed),
			Scheduler: scheduler,
		},
		app.WithNotificationContent(cfg.Notification.Body, cfg.Notification.Sound),
		app.WithTicker(app.SystemTicker, cfg.Countdown.TickInterval),
	)

	if err := session.Start(ctx); err != nil {
		slog.Error("failed to start session", "error", err)
		return 1
	}

	tracker := app.NewCountdownTracker(session)
	if err := tracker.Start(ctx); err != nil {
		slog.Error("failed to start countdown tracker", "error", err)
		return 1
	}

	router := setupRouter(
		cfg.Server,
		middleware.GinConfig{
			SkipPaths:   []string{"/ping"},
			Module:      logging.ModuleAPI,
			TracerName:  cfg.Observability.ServiceName,
			HTTPMetrics: httpMetrics,
		},
		handler.NewEventHandler(app.NewEventUseCase(session)),
		handler.NewCooldownHandler(tracker),
		handler.NewPermissionHandler(session),
	)

	// Cancelling the base context ends open SSE streams on shutdown.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	code := 0

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", "error", err)
			code = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cancelBase()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
		code = 1
	}

	session.Stop()

	if err := scheduler.Close(); err != nil {
		slog.Warn("failed to close notification scheduler", "error", err)
	}

	if err := broker.Close(); err != nil {
		slog.Warn("failed to close broker", "error", err)
	}

	if err := sqlDB.Close(); err != nil {
		slog.Error("failed to close database connection", "error", err)
	}

	slog.Info("server exited", "code", code)

	return code
}

func initDatabase(cfg config.DatabaseConfig, logCfg config.LogConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(cfg.SlowThreshold, logCfg.Level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return nil, err
	}

	return db, nil
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(serverCfg config.ServerConfig, mwCfg middleware.GinConfig, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(middleware.PanicRecoveryGin())
	router.Use(corsMiddleware(serverCfg.AllowedOrigins))
	router.Use(middleware.Gin(mwCfg))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id", "Traceparent"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}

	return cors.New(corsCfg)
}

func shutdownProviders(tp *tracing.Provider, mp *metrics.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tp.Shutdown(ctx); err != nil {
		slog.Warn("failed to shutdown tracer provider", "error", err)
	}

	if err := mp.Shutdown(ctx); err != nil {
		slog.Warn("failed to shutdown meter provider", "error", err)
	}
}
