package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventPlanner/internal/config"
	"eventPlanner/internal/storage"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Storage struct {
	DB  *sql.DB
	now func() time.Time
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return New(db), nil
}

func New(db *sql.DB) *Storage {
	return &Storage{DB: db, now: time.Now}
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// ensureEventOwner fails with storage.ErrNotFound unless userID created eventID.
func ensureEventOwner(ctx context.Context, q querier, eventID, userID int64) error {
	var exists bool

	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM events
			WHERE id = $1 AND created_by = $2
		)`, eventID, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check event owner: %w", err)
	}

	if !exists {
		return storage.ErrNotFound
	}

	return nil
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// noRows translates sql.ErrNoRows into storage.ErrNotFound.
func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	return err
}
