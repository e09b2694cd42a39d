package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/postgres"
	redisrelay "fooddelivery/internal/adapters/out/redis"
	"fooddelivery/internal/core/application/tracking"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := cmd.LoadConfig(".env")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	registry := tracking.NewRegistry()
	go registry.Run(ctx)

	manager := tracking.NewManager(registry, cfg.TrackingConfig(), logger,
		tracking.WithOrderIDValidator(func(orderID string) error {
			_, err := kernel.UUIDFromString(orderID)
			return err
		}))
	publisher := tracking.NewPublisher(registry, logger)

	notifier, err := newNotifier(ctx, cfg, publisher, logger)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(cfg, db, notifier, logger)
	if err := app.SeedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	e, err := app.CreateRouter(manager)
	if err != nil {
		return err
	}

	jobManager := jobs.NewJobManager(registry, manager, logger)
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by the HTTP server.
	manager.Shutdown()
	return e.Shutdown(shutdownCtx)
}

func newNotifier(ctx context.Context, cfg cmd.Config, publisher *tracking.Publisher, logger *slog.Logger) (ports.StatusNotifier, error) {
	if cfg.EventsType != cmd.EventsRedis {
		return tracking.NewNotifier(publisher), nil
	}

	client, err := redisrelay.Dial(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	context.AfterFunc(ctx, func() { _ = client.Close() })

	relay := redisrelay.NewRelay(client, publisher, logger)
	go func() {
		if err := relay.Run(ctx); err != nil {
			logger.Error("status relay stopped", "error", err)
		}
	}()
	return relay, nil
}
