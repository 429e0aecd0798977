package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Profile sources
const (
	SourceMemory   = "memory"
	SourceAPI      = "api"
	SourcePostgres = "postgres"
)

// Cache backends
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	Source   string
	API      APIConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Web      WebConfig
	Map      MapConfig
	LogLevel slog.Level
}

// APIConfig holds the profiles REST backend configuration
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// CacheConfig holds query cache configuration
type CacheConfig struct {
	Backend  string
	RedisURL string
	TTL      time.Duration
}

// WebConfig holds HTTP server configuration
type WebConfig struct {
	Port           int
	AllowedOrigins []string
}

// MapConfig holds tile provider configuration
type MapConfig struct {
	TileURL     string
	MapboxToken string
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from environment variables only
func FromEnv() (*Config, error) {
	source := strings.ToLower(getEnv("DIRECTORY_SOURCE", SourceMemory))
	switch source {
	case SourceMemory, SourceAPI, SourcePostgres:
	default:
		return nil, fmt.Errorf("invalid DIRECTORY_SOURCE: %q (must be memory, api or postgres)", source)
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	cacheBackend := strings.ToLower(getEnv("CACHE_BACKEND", CacheMemory))
	if cacheBackend != CacheMemory && cacheBackend != CacheRedis {
		return nil, fmt.Errorf("invalid CACHE_BACKEND: %q (must be memory or redis)", cacheBackend)
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	webPort, err := strconv.Atoi(getEnv("WEB_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEB_PORT: %w", err)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Source: source,
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:5000"),
			Timeout: apiTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "profile_directory"),
			Password: getEnv("DB_PASSWORD", "profile_directory"),
			DBName:   getEnv("DB_NAME", "profile_directory"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			Backend:  cacheBackend,
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
			TTL:      cacheTTL,
		},
		Web: WebConfig{
			Port:           webPort,
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
		},
		Map: MapConfig{
			TileURL:     getEnv("MAP_TILE_URL", ""),
			MapboxToken: getEnv("MAPBOX_TOKEN", ""),
		},
		LogLevel: logLevel,
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
