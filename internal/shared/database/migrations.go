package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RunMigrations applies every *.sql file under the migrations directory that is not yet
// recorded in schema_migrations, in lexical order, each in its own transaction.
func (db *DB) RunMigrations(ctx context.Context) error {
	logger := slog.With("component", "migrations", "path", db.migrationsPath)
	logger.Info("Starting database migrations")

	if err := db.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations, err := MigrationFiles(os.DirFS(db.migrationsPath))
	if err != nil {
		return fmt.Errorf("failed to get migration files: %w", err)
	}

	logger.Info("Found migration files", "count", len(migrations))

	for _, name := range migrations {
		if err := db.runMigration(ctx, name); err != nil {
			logger.Error("Failed to run migration", "migration", name, "error", err)
			return fmt.Errorf("failed to run migration %s: %w", name, err)
		}
	}

	logger.Info("All migrations completed")
	return nil
}

func (db *DB) createMigrationsTable(ctx context.Context) error {
	_, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT NOW()
	)`)
	return err
}

// MigrationFiles lists the .sql files of fsys in apply order.
func MigrationFiles(fsys fs.FS) ([]string, error) {
	var migrations []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".sql") {
			migrations = append(migrations, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(migrations)
	return migrations, nil
}

func (db *DB) runMigration(ctx context.Context, migrationFile string) error {
	version := filepath.Base(migrationFile)
	logger := slog.With("component", "migrations", "operation", "run_migration", "migration", version)

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("Migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(os.DirFS(db.migrationsPath), migrationFile)
	if err != nil {
		return err
	}

	logger.Info("Running migration", "size_bytes", len(content))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logger.Error("Failed to rollback transaction", "error", err)
		}
	}()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Info("Migration completed")
	return nil
}
