package alert

import "context"

// Service owns the alert lifecycle: creation, delivery, acknowledgement
// and resolution. It is the sole writer of alert-related audit entries.
type Service interface {
	// Create creates a new active alert. Creation alone writes no audit
	// entry; the generation fact is recorded on the first delivery
	// attempt together with its outcome.
	Create(ctx context.Context, a *Alert) (*Alert, error)

	// Deliver fans the alert out to all configured notification
	// channels and records exactly one alert_generated audit entry
	// carrying the per-channel outcomes. The returned bool is true if
	// at least one channel accepted the message; if none did, the
	// error is DeliveryFailed (written after the audit entry).
	Deliver(ctx context.Context, alertID string) (bool, error)

	// Resolve resolves an alert. Resolving an already-resolved alert is
	// a no-op returning the alert unchanged, with no new audit entry.
	Resolve(ctx context.Context, alertID, actor string) (*Alert, error)

	// Acknowledge acknowledges an active alert, mirroring Resolve's
	// idempotence. Resolved alerts are returned unchanged.
	Acknowledge(ctx context.Context, alertID, actor string) (*Alert, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id string) (*Alert, error)

	// List retrieves alerts with pagination, newest first
	List(ctx context.Context, skip, limit int) ([]*Alert, error)
}
