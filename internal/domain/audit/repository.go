package audit

import "context"

// Repository defines the interface for ledger data access. The ledger
// is append-only: Create and reads are the whole surface.
type Repository interface {
	// Create appends an entry to the ledger
	Create(ctx context.Context, e *Entry) error

	// GetByID retrieves a single entry by ID
	GetByID(ctx context.Context, id string) (*Entry, error)

	// List retrieves entries matching the filter, newest first
	List(ctx context.Context, f Filter, skip, limit int) ([]*Entry, error)
}
