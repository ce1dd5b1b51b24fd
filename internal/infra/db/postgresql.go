// Package db manages the gorm connection used by the persistence layer.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sideincome-tracker/backend/config"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// Database owns the gorm handle and its connection pool.
type Database struct {
	gorm *gorm.DB
}

// Connect opens a postgres connection, applies the pool limits from cfg and
// verifies the server is reachable before returning.
func Connect(cfg *config.DatabaseConfig) (*Database, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	d := &Database{gorm: gdb}
	pool, err := d.pool()
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	slog.Info("Connected to postgres",
		"max_open_conns", cfg.MaxOpenConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)
	return d, nil
}

// DB exposes the gorm handle for the repositories.
func (d *Database) DB() *gorm.DB {
	return d.gorm
}

// HealthCheck reports whether the database currently answers a ping.
func (d *Database) HealthCheck() bool {
	pool, err := d.pool()
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	return true
}

// AutoMigrate creates or updates the schema for the given models.
func (d *Database) AutoMigrate(models ...any) error {
	if err := d.gorm.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() error {
	pool, err := d.pool()
	if err != nil {
		return err
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close postgres pool: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}

func (d *Database) pool() (*sql.DB, error) {
	pool, err := d.gorm.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	return pool, nil
}
