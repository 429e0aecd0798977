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
	"time"

	"github.com/Raymond9734/profile-directory/internal/app"
	"github.com/Raymond9734/profile-directory/internal/config"
	"github.com/Raymond9734/profile-directory/internal/handler"
	"github.com/Raymond9734/profile-directory/internal/notify"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize logger
	logger := app.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	logger.Info("starting profile directory web server", slog.String("source", cfg.Source))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Error("failed to initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer application.Close()

	// Initialize handlers
	notifier := notify.NewLogNotifier(logger)
	router := handler.NewRouter(handler.Handlers{
		Directory:      handler.NewDirectoryHandler(application.ProfileSvc, application.Tiles, logger),
		Admin:          handler.NewAdminHandler(application.ProfileSvc, notifier, logger),
		Health:         handler.NewHealthHandler(application.HealthChecks(), logger),
		AllowedOrigins: cfg.Web.AllowedOrigins,
	}, logger)

	// Create server
	addr := fmt.Sprintf(":%d", cfg.Web.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("web server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			application.Close()
			os.Exit(1)
		}

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			application.Close()
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
