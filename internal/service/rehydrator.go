package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-llm-relay/internal/config"
	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/internal/store"
	"github.com/MKhiriev/go-llm-relay/internal/validators"
	"github.com/MKhiriev/go-llm-relay/models"
	"golang.org/x/sync/errgroup"
)

// RehydrationReport summarizes one rehydration pass.
type RehydrationReport struct {
	Total    int
	Restored int
	Failed   int
	Skipped  int
}

// Rehydrator rebuilds live clients for every persisted session at startup.
// A record whose client cannot be built is logged and kept in the store, so
// the next start tries again.
type Rehydrator struct {
	store       store.SessionStore
	registry    ClientRegistry
	manager     *SessionManager
	concurrency int
	validator   validators.Validator

	logger *logger.Logger
}

// NewRehydrator constructs a Rehydrator. At most cfg.RehydrationConcurrency
// clients are built in parallel.
func NewRehydrator(sessionStore store.SessionStore, registry ClientRegistry, manager *SessionManager, cfg config.Workers, log *logger.Logger) *Rehydrator {
	concurrency := cfg.RehydrationConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Rehydrator{
		store:       sessionStore,
		registry:    registry,
		manager:     manager,
		concurrency: concurrency,
		validator:   validators.NewRelayValidator(),
		logger:      log,
	}
}

// Run implements workers.Worker. It never fails: an unreadable store means
// nothing is rehydrated.
func (r *Rehydrator) Run(ctx context.Context) error {
	report := r.Rehydrate(ctx)

	r.logger.Info().
		Int("total", report.Total).
		Int("restored", report.Restored).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("rehydration finished")

	return nil
}

// Rehydrate runs one pass over the store and returns when every record has
// been handled.
func (r *Rehydrator) Rehydrate(ctx context.Context) RehydrationReport {
	records, err := r.store.LoadAll(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("session store is unreadable, skipping rehydration")
		return RehydrationReport{}
	}

	var restored, failed, skipped atomic.Int64

	var g errgroup.Group
	g.SetLimit(r.concurrency)

	for _, record := range records {
		g.Go(func() error {
			switch r.rehydrate(ctx, record) {
			case outcomeRestored:
				restored.Add(1)
			case outcomeFailed:
				failed.Add(1)
			case outcomeSkipped:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return RehydrationReport{
		Total:    len(records),
		Restored: int(restored.Load()),
		Failed:   int(failed.Load()),
		Skipped:  int(skipped.Load()),
	}
}

type rehydrationOutcome int

const (
	outcomeRestored rehydrationOutcome = iota
	outcomeFailed
	outcomeSkipped
)

func (r *Rehydrator) rehydrate(ctx context.Context, record models.PersistedRecord) rehydrationOutcome {
	log := r.logger.ForUser(record.UserID)

	if err := r.validator.Validate(ctx, record); err != nil {
		log.Warn().Err(err).Msg("malformed session record, record kept")
		return outcomeFailed
	}

	generation := r.manager.generation(record.UserID)
	client, shared, err := r.registry.ConstructFor(ctx, record.UserID, record.ProviderName, record.Credential)
	if err != nil {
		log.Warn().Err(err).Str("provider", record.ProviderName).Msg("error rehydrating session, record kept")
		return outcomeFailed
	}

	if !r.manager.install(record, client, generation) {
		if !shared {
			r.registry.Discard(record.UserID, client)
		}
		log.Debug().Msg("user moved on before rehydration finished")
		return outcomeSkipped
	}

	log.Debug().Str("provider", record.ProviderName).Msg("session rehydrated")
	return outcomeRestored
}
