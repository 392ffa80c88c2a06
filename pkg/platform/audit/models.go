// Package audit records what the edge did on behalf of a caller. Events are
// emitted without blocking the request path and drained by a worker.
package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers events that create or change insured parties
	// or policies.
	CategoryCompliance EventCategory = "compliance"
	// CategoryOperations covers failures and routine activity.
	CategoryOperations EventCategory = "operations"
)

type AuditEvent string

const (
	EventBeneficiaryCreated  AuditEvent = "beneficiary_created"
	EventBeneficiaryReused   AuditEvent = "beneficiary_reused"
	EventInsuranceCreated    AuditEvent = "insurance_created"
	EventOrchestrationFailed AuditEvent = "orchestration_failed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventBeneficiaryCreated: CategoryCompliance,
	EventInsuranceCreated:   CategoryCompliance,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	Action    AuditEvent
	// UserID is the authenticated subject the action was taken for.
	UserID string
	// Subject identifies the record acted on (beneficiary or insurance id).
	Subject   string
	Decision  string
	Reason    string
	RequestID string
}

// Category is derived from the action.
func (e Event) Category() EventCategory {
	return e.Action.Category()
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByUser(ctx context.Context, userID string) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
