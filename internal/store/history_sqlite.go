package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/greentech-painting/greenpush/internal/logger"
	"github.com/greentech-painting/greenpush/migrations"
	"github.com/greentech-painting/greenpush/models"
)

// HistoryFilter narrows a history listing. Zero values mean "no filter";
// Limit defaults to 20.
type HistoryFilter struct {
	Reference string
	Status    string
	Limit     int
}

const defaultHistoryLimit = 20

// HistoryRepository records pipeline runs in a local sqlite database so past
// pushes can be queried without parsing the CSV audit log. It never gates the
// pipeline: the CSV log remains the contract-bearing record.
type HistoryRepository struct {
	db  *sql.DB
	log *logger.Logger
}

// NewHistoryRepository opens (creating if needed) the sqlite database at path
// and applies pending migrations.
func NewHistoryRepository(path string, log *logger.Logger) (*HistoryRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("history repository ready")
	return &HistoryRepository{db: db, log: log}, nil
}

// newHistoryRepositoryWithDB wires an existing connection; used by tests.
func newHistoryRepositoryWithDB(db *sql.DB, log *logger.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, log: log}
}

// SaveRun persists one run record.
func (r *HistoryRepository) SaveRun(ctx context.Context, entry models.AuditEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.db.ExecContext(ctx, insertRun,
		ts.UTC().Format("2006-01-02T15:04:05Z"),
		entry.Reference,
		entry.CustomerName,
		entry.ItemsCount,
		entry.Subtotal,
		entry.Currency,
		entry.Status,
		entry.PDFPath,
		entry.EstimateID,
		TruncateError(entry.Error),
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	return nil
}

// ListRuns returns the most recent runs matching filter, newest first.
func (r *HistoryRepository) ListRuns(ctx context.Context, filter HistoryFilter) ([]models.HistoryRow, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query := sq.Select(historyColumns...).
		From("sync_history").
		OrderBy("id DESC").
		Limit(uint64(limit))

	if filter.Reference != "" {
		query = query.Where(sq.Eq{"reference": filter.Reference})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": filter.Status})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryRow
	for rows.Next() {
		var row models.HistoryRow
		if err = rows.Scan(
			&row.ID,
			&row.Timestamp,
			&row.Reference,
			&row.CustomerName,
			&row.ItemsCount,
			&row.Subtotal,
			&row.Currency,
			&row.Status,
			&row.PDFPath,
			&row.EstimateID,
			&row.Error,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// Close releases the underlying database connection.
func (r *HistoryRepository) Close() error {
	return r.db.Close()
}
