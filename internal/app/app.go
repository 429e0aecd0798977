// Package app wires the configured profile source, query cache and service
// shared by the web server and the terminal client.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Raymond9734/profile-directory/internal/cache"
	"github.com/Raymond9734/profile-directory/internal/config"
	"github.com/Raymond9734/profile-directory/internal/db"
	"github.com/Raymond9734/profile-directory/internal/handler"
	"github.com/Raymond9734/profile-directory/internal/mapview"
	"github.com/Raymond9734/profile-directory/internal/repository"
	"github.com/Raymond9734/profile-directory/internal/service"
)

// App holds the wired dependencies
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Database   *db.DB
	Store      cache.Store
	ProfileSvc service.ProfileService
	Tiles      mapview.TileLayer
}

// NewLogger creates the JSON logger used by every binary
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// New connects the configured source and cache
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
		Tiles:  mapview.Tiles(cfg.Map.TileURL, cfg.Map.MapboxToken),
	}

	repo, err := a.newRepository(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	store, err := a.newStore()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = store

	a.ProfileSvc = service.NewProfileService(repo, store, logger)
	return a, nil
}

func (a *App) newRepository(ctx context.Context) (repository.ProfileRepository, error) {
	switch a.Config.Source {
	case config.SourceAPI:
		a.Logger.Info("using REST profile source", slog.String("base_url", a.Config.API.BaseURL))
		return repository.NewAPIRepository(repository.APIConfig{
			BaseURL: a.Config.API.BaseURL,
			Timeout: a.Config.API.Timeout,
		}, nil), nil

	case config.SourcePostgres:
		database, err := db.New(db.Config{
			Host:     a.Config.Database.Host,
			Port:     a.Config.Database.Port,
			User:     a.Config.Database.User,
			Password: a.Config.Database.Password,
			DBName:   a.Config.Database.DBName,
			SSLMode:  a.Config.Database.SSLMode,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.Database = database

		if err := database.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		a.Logger.Info("connected to database")

		repo := repository.NewProfileRepository(database.DB)
		if err := seedIfEmpty(ctx, repo, a.Logger); err != nil {
			return nil, err
		}
		return repo, nil

	default:
		a.Logger.Info("using in-memory profile source")
		return repository.NewMemoryRepository(repository.SeedProfiles()), nil
	}
}

func (a *App) newStore() (cache.Store, error) {
	if a.Config.Cache.Backend != config.CacheRedis {
		return cache.NewMemoryStore(a.Config.Cache.TTL), nil
	}
	store, err := cache.NewRedisStore(cache.RedisConfig{
		URL:       a.Config.Cache.RedisURL,
		Namespace: "profile-directory:",
		TTL:       a.Config.Cache.TTL,
	}, a.Logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// seedIfEmpty loads the development profiles into an empty table
func seedIfEmpty(ctx context.Context, repo repository.ProfileRepository, logger *slog.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range repository.SeedProfiles() {
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed profiles: %w", err)
		}
	}
	logger.Info("seeded profiles table", slog.Int("count", len(repository.SeedProfiles())))
	return nil
}

// HealthChecks lists the dependencies reported by /health
func (a *App) HealthChecks() map[string]handler.HealthChecker {
	checks := map[string]handler.HealthChecker{"cache": a.Store}
	if a.Database != nil {
		checks["database"] = a.Database
	} else {
		checks["database"] = nil
	}
	return checks
}

// Close releases the database and cache connections
func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Error("failed to close cache", slog.String("error", err.Error()))
		}
	}
	if a.Database != nil {
		if err := a.Database.Close(); err != nil {
			a.Logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}
}
