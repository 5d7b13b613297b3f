package incident

import (
	"context"
	"time"
)

// Repository defines the interface for incident data access
type Repository interface {
	// Create creates a new incident
	Create(ctx context.Context, in *Incident) error

	// GetByID retrieves an incident by ID, archived or not
	GetByID(ctx context.Context, id string) (*Incident, error)

	// Update updates an incident's status fields
	Update(ctx context.Context, in *Incident) error

	// Archive stamps the incident as archived. Archiving an already
	// archived incident reports false without writing.
	Archive(ctx context.Context, id string, at time.Time) (bool, error)

	// List retrieves non-archived incidents, newest first
	List(ctx context.Context, skip, limit int) ([]*Incident, error)
}
