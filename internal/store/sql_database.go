package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a *sql.DB together with the dialect details the session repository
// needs to build portable SQL.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// retryable reports whether err may go away on a second attempt.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

// execWithRetry runs query once more when the first failure is classified
// as retryable.
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil && db.retryable(err) {
		db.logger.Warn().Err(err).Str("func", "*DB.execWithRetry").Msg("retrying statement after retryable error")
		result, err = db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result, nil
}
