package alert

import (
	"context"
	"time"
)

// Repository defines the interface for alert data access. There is no
// delete: alerts are retained for the audit trail.
type Repository interface {
	// Create creates a new alert
	Create(ctx context.Context, a *Alert) error

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*Alert, error)

	// MarkResolved transitions an alert to resolved if it is not already.
	// It reports whether this call performed the transition; a resolve
	// that loses a race observes the already-resolved row and returns
	// false without writing.
	MarkResolved(ctx context.Context, id string, at time.Time) (bool, error)

	// MarkAcknowledged transitions an active alert to acknowledged,
	// reporting whether this call performed the transition.
	MarkAcknowledged(ctx context.Context, id string) (bool, error)

	// List retrieves alerts ordered by triggered time, newest first
	List(ctx context.Context, skip, limit int) ([]*Alert, error)

	// ListByIncident retrieves alerts linked to an incident
	ListByIncident(ctx context.Context, incidentID string) ([]*Alert, error)
}
