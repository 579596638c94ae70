package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestSessionRepo(t *testing.T, postgres bool) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, dialect: "sqlite3", placeholder: sq.Question, logger: logger.Nop()}
	if postgres {
		db.dialect = "pgx"
		db.placeholder = sq.Dollar
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return &sessionRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testRecord = models.PersistedRecord{UserID: "u1", ProviderName: "Groq", Credential: " gsk-key "}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestSessionRepository_Save_SQLite(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	mock.ExpectExec(`INSERT INTO sessions \(user_id,provider_name,credential,updated_at\) VALUES \(\?,\?,\?,\?\) ON CONFLICT \(user_id\) DO UPDATE SET`).
		WithArgs("u1", "Groq", " gsk-key ", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), testRecord))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_PostgresPlaceholders(t *testing.T) {
	repo, mock := newTestSessionRepo(t, true)

	mock.ExpectExec(`INSERT INTO sessions .* VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT`).
		WithArgs("u1", "Groq", " gsk-key ", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), testRecord))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_RetriesOnceOnRetryable(t *testing.T) {
	repo, mock := newTestSessionRepo(t, true)

	mock.ExpectExec(`INSERT INTO sessions`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec(`INSERT INTO sessions`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), testRecord))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_NoRetryOnNonRetryable(t *testing.T) {
	repo, mock := newTestSessionRepo(t, true)

	mock.ExpectExec(`INSERT INTO sessions`).
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	err := repo.Save(context.Background(), testRecord)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_GivesUpAfterSecondFailure(t *testing.T) {
	repo, mock := newTestSessionRepo(t, true)

	mock.ExpectExec(`INSERT INTO sessions`).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec(`INSERT INTO sessions`).
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.Save(context.Background(), testRecord)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Save_EmptyUser(t *testing.T) {
	repo, _ := newTestSessionRepo(t, false)

	err := repo.Save(context.Background(), models.PersistedRecord{ProviderName: "Groq"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestSessionRepository_Delete(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	mock.ExpectExec(`DELETE FROM sessions WHERE user_id = \?`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_MissingIsNotAnError(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	mock.ExpectExec(`DELETE FROM sessions`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "ghost"))
}

func TestSessionRepository_Delete_Error(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	mock.ExpectExec(`DELETE FROM sessions`).
		WillReturnError(errors.New("disk I/O error"))

	assert.ErrorIs(t, repo.Delete(context.Background(), "u1"), ErrExecutingStatement)
}

// ── LoadAll ───────────────────────────────────────────────────────────────────

func TestSessionRepository_LoadAll(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	rows := sqlmock.NewRows([]string{"user_id", "provider_name", "credential"}).
		AddRow("u1", "Groq", "k1").
		AddRow("u2", "OpenAI", "k2")
	mock.ExpectQuery(`SELECT user_id, provider_name, credential FROM sessions ORDER BY user_id`).
		WillReturnRows(rows)

	records, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.PersistedRecord{
		{UserID: "u1", ProviderName: "Groq", Credential: "k1"},
		{UserID: "u2", ProviderName: "OpenAI", Credential: "k2"},
	}, records)
}

func TestSessionRepository_LoadAll_Empty(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "provider_name", "credential"}))

	records, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSessionRepository_LoadAll_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("no such table: sessions"))

	_, err := repo.LoadAll(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSessionRepository_LoadAll_RowError(t *testing.T) {
	repo, mock := newTestSessionRepo(t, false)

	rows := sqlmock.NewRows([]string{"user_id", "provider_name", "credential"}).
		AddRow("u1", "Groq", "k1").
		RowError(0, errors.New("corrupt page"))
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	_, err := repo.LoadAll(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}
