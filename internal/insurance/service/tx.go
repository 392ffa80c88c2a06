package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dErrors "assurance/pkg/domain-errors"
)

// StoreTx provides a transactional boundary for multi-step store mutations.
// Implementations may wrap a database transaction or, in-memory, a coarse lock.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// defaultTxTimeout bounds a transaction whose context has no deadline.
const defaultTxTimeout = 5 * time.Second

// lockTx serialises transactions with a single mutex. Writes already applied
// are not undone when fn fails.
type lockTx struct {
	mu      sync.Mutex
	timeout time.Duration
}

func (t *lockTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return abortError(err)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		timeout := t.timeout
		if timeout == 0 {
			timeout = defaultTxTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return abortError(err)
	}
	return fn(ctx)
}

func abortError(err error) error {
	if errors.Is(err, context.Canceled) {
		return dErrors.Wrap(err, dErrors.CodeCancelled, "transaction aborted: context cancelled")
	}
	return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: deadline exceeded")
}
