package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"dealscout/internal/config"
	"dealscout/internal/publisher"
	"dealscout/internal/scheduler"
	"dealscout/internal/service"
	"dealscout/internal/source/genai"
	"dealscout/internal/source/pricing"
	"dealscout/internal/storage/postgres"
	"dealscout/internal/transport/httpapi"
	"dealscout/internal/valuation"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	calibrationPath := flag.String("calibration", "", "path to calibration file (default: embedded)")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	cal, err := valuation.LoadCalibration(*calibrationPath)
	if err != nil {
		logger.Error("failed to load calibration", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	listingStore := postgres.NewListingStore(db)
	valuationCache := postgres.NewValuationCacheStore(db)
	jobStore := postgres.NewJobStore(db)
	txManager := postgres.NewTransactionManager(db)

	// The sold-event publisher is optional; without it sweeps still work,
	// they just emit nothing.
	var events service.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	// Optional external clients; nil means the fallback tier takes over.
	var pricingClient service.PricingClient
	if c := pricing.New(pricing.Config{
		BaseURL:        cfg.Pricing.BaseURL,
		APIKey:         cfg.Pricing.APIKey,
		Timeout:        cfg.Pricing.Timeout,
		MaxAttempts:    cfg.Pricing.Retry.MaxAttempts,
		InitialBackoff: cfg.Pricing.Retry.InitialBackoff,
		MaxBackoff:     cfg.Pricing.Retry.MaxBackoff,
	}, logger); c != nil {
		pricingClient = c
	}

	var generativeClient service.GenerativeClient
	if c := genai.New(genai.Config{
		BaseURL: cfg.Generative.BaseURL,
		APIKey:  cfg.Generative.APIKey,
		Model:   cfg.Generative.Model,
		Timeout: cfg.Generative.Timeout,
	}, logger); c != nil {
		generativeClient = c
	}

	// Initialize services
	estimator := valuation.NewEstimator(cal)
	compsEngine := service.NewCompsEngine(listingStore, cfg.Comps, logger)
	valuationService := service.NewValuationService(
		valuationCache,
		pricingClient,
		generativeClient,
		estimator,
		compsEngine,
		cfg.Valuation.CacheTTL,
		cfg.Comps.MinComps,
		logger,
	)
	lifecycleService := service.NewLifecycleService(listingStore, txManager, events, cfg.Lifecycle, logger)
	jobRunner := service.NewJobRunner(jobStore, lifecycleService, logger)

	sched := scheduler.New(logger)
	sched.Add(&scheduler.Task{
		Name:     "drain_jobs",
		Interval: cfg.Jobs.DrainInterval,
		Timeout:  5 * time.Minute,
		Run: func(ctx context.Context) error {
			_, err := jobRunner.Drain(ctx)
			return err
		},
	})
	sched.Add(&scheduler.Task{
		Name:     "sweep_stale",
		Interval: cfg.Lifecycle.SweepInterval,
		Timeout:  10 * time.Minute,
		Run: func(ctx context.Context) error {
			_, err := lifecycleService.SweepStale(ctx)
			return err
		},
	})
	sched.Add(&scheduler.Task{
		Name:     "purge_sold",
		Interval: cfg.Lifecycle.PurgeInterval,
		Timeout:  10 * time.Minute,
		Run: func(ctx context.Context) error {
			_, err := lifecycleService.Purge(ctx)
			return err
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// HTTP boundary
	apiServer := httpapi.NewServer(valuationService, logger)
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: apiServer.Routes(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting dealscout",
		"sweep_interval", cfg.Lifecycle.SweepInterval,
		"stale_threshold", cfg.Lifecycle.StaleThreshold,
		"purge_interval", cfg.Lifecycle.PurgeInterval,
		"retention_days", cfg.Lifecycle.RetentionDays,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
