package main

import (
	"alcyxob/workout-tracker/internal/api"
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/logging"
	"alcyxob/workout-tracker/internal/realtime"
	"alcyxob/workout-tracker/internal/repository/backends"
	"alcyxob/workout-tracker/internal/service"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Workout Tracker API
// @version 1.0
// @description Weekly workout planning, exercise catalog, weight and meal tracking.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load config: %v\n", err)
		os.Exit(1)
	}

	// --- Logging ---
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	logger.Info("Starting Workout Tracker Server...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Repositories ---
	repos, closeStore, err := backends.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Could not open %s store: %v", cfg.Store.Backend, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Errorf("Failed to close store: %v", err)
		}
	}()

	// --- Object storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(ctx, cfg.S3, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize S3 storage: %v", err)
		}
	} else {
		logger.Info("S3 bucket not configured; workout image uploads are disabled")
	}

	// --- Realtime feed and picker sessions ---
	hub := realtime.NewHub(cfg.Realtime.PingInterval, logger)
	defer hub.Close()

	pickers := catalog.NewSessions(cfg.Catalog.SessionTTL)
	go pickers.Run(ctx, time.Minute)

	// --- Services ---
	services := api.Services{
		Auth:     service.NewAuthService(repos.Users, cfg.JWT.Secret, cfg.JWT.Expiration),
		Workouts: service.NewWorkoutService(repos.Workouts, hub, fileStorage, logger),
		Progress: service.NewProgressService(repos.Weights, logger),
		Meals:    service.NewMealService(repos.Meals),
		Catalog:  pickers,
		Hub:      hub,
	}

	// --- Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	if err := api.RegisterValidators(); err != nil {
		logger.Fatalf("Failed to register validators: %v", err)
	}
	router := gin.New()
	router.Use(api.Recovery(logger), api.RequestLogger(logger))
	api.SetupRoutes(router, services, logger)

	// --- HTTP Server ---
	// No WriteTimeout: websocket connections stay open for the feed.
	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("ListenAndServe: %v", err)
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	hub.Close()
	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exiting.")
}
