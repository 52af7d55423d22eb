package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/broker"
	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	leadrepo "github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/lead"
	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/leadevent"
	propertyrepo "github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/property"
	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/stage"
	taskrepo "github.com/heartmarshall/leadflow-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/leadflow-backend/internal/auth"
	"github.com/heartmarshall/leadflow-backend/internal/config"
	"github.com/heartmarshall/leadflow-backend/internal/service/pipeline"
	"github.com/heartmarshall/leadflow-backend/internal/service/property"
	"github.com/heartmarshall/leadflow-backend/internal/service/task"
	"github.com/heartmarshall/leadflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/leadflow-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the event broker, wires the services, and serves HTTP until
// ctx is cancelled. Shutdown drains requests first, then in-flight stage
// writes, then the broker.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("broker", brokerName(cfg.Broker)),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		n, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	publisher, err := broker.New(ctx, cfg.Broker, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("close broker", slog.String("error", err.Error()))
		}
	}()

	// Repositories.
	stages := stage.New(pool)
	leads := leadrepo.New(pool)
	events := leadevent.New(pool)
	tasks := taskrepo.New(pool)
	properties := propertyrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services.
	registry := pipeline.NewRegistry(logger, stages, leads, events, publisher, pipeline.Options{
		PersistTimeout: cfg.Pipeline.PersistTimeout,
		DefaultStages:  cfg.Pipeline.DefaultStages,
	})
	if ttl := cfg.Pipeline.IdleTTL; ttl > 0 {
		sweepCtx, stopSweep := context.WithCancel(ctx)
		defer stopSweep()
		go registry.SweepIdle(sweepCtx, ttl/2, ttl)
	}
	taskSvc := task.NewService(logger, tasks, leads, cfg.Tasks.CompletedLimit)
	propertySvc := property.NewService(logger, properties, txm)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mws := []middleware.Middleware{middleware.CORS(cfg.CORS)}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMinute))
	}

	router := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		Pipeline:   rest.NewPipelineHandler(registry, logger),
		Tasks:      rest.NewTaskHandler(taskSvc, logger),
		Properties: rest.NewPropertyHandler(propertySvc, logger),
		Health:     rest.NewHealthHandler(Version, rest.Check{Name: "database", Ping: pool.Ping}),
		Middleware: mws,
		Auth:       middleware.Auth(jwtManager, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if err := registry.Close(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("drain pipeline: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func brokerName(cfg config.BrokerConfig) string {
	if cfg.Driver == config.BrokerDriverNone {
		return "none"
	}
	return cfg.Driver
}
