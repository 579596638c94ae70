// Package workers provides abstractions for running the startup phase of
// the relay.
// It defines the Worker interface and a Workers aggregate that runs
// several workers one after another.
package workers

import "context"

// Worker is the interface that must be implemented by any startup worker.
//
// Run blocks until the worker's job is done. A returned error stops the
// startup phase.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    // do startup work
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
