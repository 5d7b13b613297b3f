package incident

import "context"

// Service defines the interface for incident business logic
type Service interface {
	// Create opens a new incident
	Create(ctx context.Context, in *Incident) (*Incident, error)

	// GetByID retrieves an incident by ID
	GetByID(ctx context.Context, id string) (*Incident, error)

	// UpdateStatus moves an incident through its workflow
	UpdateStatus(ctx context.Context, id, status string) (*Incident, error)

	// Close closes an incident
	Close(ctx context.Context, id string) (*Incident, error)

	// Archive hides an incident from listings. Linked alerts and audit
	// entries are untouched; the ledger never loses referents.
	Archive(ctx context.Context, id string) error

	// List retrieves non-archived incidents with pagination
	List(ctx context.Context, skip, limit int) ([]*Incident, error)
}
