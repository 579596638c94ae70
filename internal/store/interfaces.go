package store

import (
	"context"

	"github.com/MKhiriev/go-llm-relay/models"
)

// SessionStore is the durable set of connected sessions, keyed by user.
// Save and Delete are idempotent.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock
type SessionStore interface {
	// Save inserts or replaces the record of record.UserID.
	Save(ctx context.Context, record models.PersistedRecord) error
	// Delete removes the record of userID. Deleting a missing record is not
	// an error.
	Delete(ctx context.Context, userID string) error
	// LoadAll returns every stored record.
	LoadAll(ctx context.Context) ([]models.PersistedRecord, error)
	// Close releases the underlying connection or file.
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
