// Package main is the entry point for the Habit Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/infra/db"
	"github.com/habit-tracker/backend/internal/infra/dependency"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Habit Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.GoalModel{},
			&model.GoalProgressModel{},
			&model.StreakModel{},
			&model.ReminderModel{},
			&model.ProfileModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Initialize Redis client for the dashboard cache
	redisClient := newRedisClient(&cfg.Redis)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Wire dependencies and setup the router
	var r *router.Router
	if database != nil {
		injector := dependency.NewInjector(cfg, database.DB(), redisClient)
		r = injector.Router
	} else {
		// Degraded mode: health endpoint only
		healthController := controller.NewHealthController(func() bool { return false })
		r = router.NewRouter(healthController, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	}
	engine := r.Setup(cfg.Server.Environment)

	// Start the reminder delivery worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if database != nil && cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		worker := email.NewWorker(
			persistence.NewReminderRepository(database.DB()),
			persistence.NewProfileRepository(database.DB()),
			email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail),
			adapters.NewZoneClock(cfg.Time.Zone),
			email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			},
		)
		go worker.Start(workerCtx)
	} else {
		slog.Info("Reminder delivery worker disabled")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newRedisClient builds a Redis client from the URL, with password and DB
// overrides applied when set.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, using defaults", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts)
}
