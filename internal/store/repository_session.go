package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable       = "sessions"
	upsertSessionSuffix = "ON CONFLICT (user_id) DO UPDATE SET " +
		"provider_name = excluded.provider_name, " +
		"credential = excluded.credential, " +
		"updated_at = excluded.updated_at"
)

// sessionRepository is the SQL implementation of [SessionStore]. The same
// statements run on PostgreSQL and SQLite; only the placeholder format
// differs.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionStore] over db.
func NewSessionRepository(db *DB, log *logger.Logger) SessionStore {
	log.Debug().Str("dialect", db.dialect).Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: log,
	}
}

func (r *sessionRepository) Save(ctx context.Context, record models.PersistedRecord) error {
	if record.UserID == "" {
		return ErrInvalidRecord
	}

	query, args, err := sq.Insert(sessionsTable).
		Columns("user_id", "provider_name", "credential", "updated_at").
		Values(record.UserID, record.ProviderName, record.Credential, time.Now().UTC()).
		Suffix(upsertSessionSuffix).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return err
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID string) error {
	query, args, err := sq.Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.execWithRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.Delete").Msg("error deleting session")
		return err
	}

	return nil
}

func (r *sessionRepository) LoadAll(ctx context.Context) ([]models.PersistedRecord, error) {
	query, args, err := sq.Select("user_id", "provider_name", "credential").
		From(sessionsTable).
		OrderBy("user_id").
		PlaceholderFormat(r.db.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil && r.db.retryable(err) {
		rows, err = r.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.PersistedRecord
	for rows.Next() {
		var record models.PersistedRecord
		if err = rows.Scan(&record.UserID, &record.ProviderName, &record.Credential); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *sessionRepository) Close() error {
	return r.db.Close()
}
