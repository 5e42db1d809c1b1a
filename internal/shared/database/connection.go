package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"cosmos-server/internal/shared/config"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
	migrationsPath string
}

// Connect opens the Postgres pool described by cfg and pings it.
func Connect(cfg *config.Config) (*DB, error) {
	logger := slog.With("component", "database", "operation", "connect")

	logger.Info("Connecting to database",
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"user", cfg.Database.User,
		"database", cfg.Database.Name,
		"sslmode", cfg.Database.SSLMode,
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		logger.Error("Failed to open database connection", "error", err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("Failed to ping database", "error", err, "host", cfg.Database.Host)
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Error("Failed to close database after ping failure", "close_error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return &DB{DB: sqlDB, migrationsPath: cfg.Database.MigrationsPath}, nil
}

// Ping reports whether the database answers within the context deadline. A nil DB is
// reported as disabled.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database disabled")
	}
	return db.PingContext(ctx)
}

func (db *DB) Close() error {
	if db == nil || db.DB == nil {
		return nil
	}
	return db.DB.Close()
}
