package universe

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"

	"cosmos-server/internal/shared/errors"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// Records is the persistence of the universe registry.
type Records interface {
	CreateUniverse(ctx context.Context, record *Record) error
	GetUniverse(ctx context.Context, id int) (*Record, error)
	ListUniverses(ctx context.Context) ([]*Record, error)
	DeleteUniverse(ctx context.Context, id int) error
}

type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing universe repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const recordColumns = `id, name, description, seed, size_min, size_max, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	record := &Record{}
	var seed int64
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Description,
		&seed,
		&record.SizeMin,
		&record.SizeMax,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Seed = uint32(seed)
	return record, nil
}

func (r *Repository) CreateUniverse(ctx context.Context, record *Record) error {
	logger := r.logger.With("component", "universe_repository", "operation", "create_universe", "name", record.Name)

	query := `
		INSERT INTO universes (name, description, seed, size_min, size_max)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		record.Name,
		record.Description,
		int64(record.Seed),
		record.SizeMin,
		record.SizeMax,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if stderrors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errors.Conflictf("universe named %q already exists", record.Name)
		}
		logger.Error("Failed to create universe", "error", err)
		return fmt.Errorf("failed to create universe: %w", err)
	}

	logger.Debug("Universe created", "universe_id", record.ID)
	return nil
}

func (r *Repository) GetUniverse(ctx context.Context, id int) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM universes WHERE id = $1`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("universe not found with id: %d", id)
		}
		r.logger.Error("Failed to get universe", "universe_id", id, "error", err)
		return nil, fmt.Errorf("failed to get universe: %w", err)
	}
	return record, nil
}

func (r *Repository) ListUniverses(ctx context.Context) ([]*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM universes ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list universes", "error", err)
		return nil, fmt.Errorf("failed to list universes: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.Error("Failed to close rows", "error", err)
		}
	}()

	records := []*Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			r.logger.Error("Failed to scan universe", "error", err)
			return nil, fmt.Errorf("failed to scan universe: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating universes: %w", err)
	}
	return records, nil
}

func (r *Repository) DeleteUniverse(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM universes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete universe", "universe_id", id, "error", err)
		return fmt.Errorf("failed to delete universe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NotFoundf("universe not found with id: %d", id)
	}
	return nil
}
