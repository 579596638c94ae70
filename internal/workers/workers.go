package workers

import (
	"context"
	"fmt"
)

// Workers runs its workers sequentially, in the order given.
type Workers struct {
	workers []Worker
}

// NewWorkers returns a Workers running ws in order. Nil workers are
// skipped.
func NewWorkers(ws ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range ws {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

// Run stops at the first failing worker or when ctx is done.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("worker %d (%T) failed: %w", i, worker, err)
		}
	}
	return nil
}
