package worker

import (
	"context"
)

// Worker is a background job with its own lifecycle.
type Worker interface {
	// Start runs the worker until the context or stop channel closes.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name returns the worker name.
	Name() string
}
