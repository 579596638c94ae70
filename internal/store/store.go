package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
)

// NewSessionStore picks the backend from the DSN form (see [config.DB]),
// connects, and, for SQL backends, applies migrations.
func NewSessionStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (SessionStore, error) {
	dsn := cfg.DB.DSN

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return migrated(db, log)

	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		rdb, err := NewConnectRedis(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return NewRedisSessionStore(rdb, DefaultRedisKey, log), nil

	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		return NewFileSessionStore(dsn, log)

	default:
		s, err := openSQLite(ctx, dsn, log)
		if err != nil && isCorruptSQLite(err) {
			log.Warn().Err(err).Str("func", "NewSessionStore").Str("path", dsn).
				Msg("session database is corrupt, moving it aside and starting with no sessions")
			if qErr := quarantine(dsn, sqliteSideFiles...); qErr != nil {
				return nil, qErr
			}
			s, err = openSQLite(ctx, dsn, log)
		}
		return s, err
	}
}

func openSQLite(ctx context.Context, path string, log *logger.Logger) (SessionStore, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, err
	}
	return migrated(db, log)
}

func migrated(db *DB, log *logger.Logger) (SessionStore, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	return NewSessionRepository(db, log), nil
}
