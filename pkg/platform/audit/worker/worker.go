package worker

import (
	"context"
	"log/slog"

	audit "assurance/pkg/platform/audit"
)

// Worker consumes audit events from a channel and persists them. A failed
// append is logged and the event is skipped.
type Worker struct {
	store  audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run persists events until ctx is done or the inbox is closed. Events still
// queued when the inbox closes are persisted before Run returns.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			w.persist(ctx, event)
		}
	}
}

func (w *Worker) persist(ctx context.Context, event audit.Event) {
	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to persist audit event",
			"action", event.Action,
			"user_id", event.UserID,
			"request_id", event.RequestID,
			"error", err,
		)
		return
	}
	w.logger.InfoContext(ctx, "audit",
		"category", event.Category(),
		"action", event.Action,
		"user_id", event.UserID,
		"subject", event.Subject,
		"decision", event.Decision,
		"request_id", event.RequestID,
	)
}
