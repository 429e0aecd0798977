package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps the profiles database connection
type DB struct {
	*sql.DB
}

// Config holds database configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the lib/pq connection string
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// schema creates the profiles table used by the postgres repository
const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	title        TEXT NOT NULL DEFAULT '',
	role         TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL DEFAULT '',
	image_url    TEXT NOT NULL DEFAULT '',
	email        TEXT NOT NULL DEFAULT '',
	phone        TEXT NOT NULL DEFAULT '',
	website      TEXT NOT NULL DEFAULT '',
	linkedin     TEXT NOT NULL DEFAULT '',
	address      TEXT NOT NULL DEFAULT '',
	city         TEXT NOT NULL DEFAULT '',
	state        TEXT NOT NULL DEFAULT '',
	zip_code     TEXT NOT NULL DEFAULT '',
	latitude     DOUBLE PRECISION NULL CHECK (latitude BETWEEN -90 AND 90),
	longitude    DOUBLE PRECISION NULL CHECK (longitude BETWEEN -180 AND 180),
	skills       TEXT[] NULL,
	interests    TEXT[] NULL,
	experience   TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_profiles_city_state ON profiles (LOWER(city), LOWER(state));
`

// New opens a pooled connection and verifies it with a ping
func New(cfg Config) (*DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// EnsureSchema creates the profiles table when it does not exist yet
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection gracefully
func (db *DB) Close() error {
	return db.DB.Close()
}

// Health performs a health check on the database
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var result int
	err := db.QueryRowContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if result != 1 {
		return fmt.Errorf("unexpected health check result: %d", result)
	}

	return nil
}
