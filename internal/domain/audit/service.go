package audit

import "context"

// Service defines the read/append surface exposed over the ledger
type Service interface {
	// Record appends an entry, assigning its ID and event time when unset
	Record(ctx context.Context, e *Entry) (*Entry, error)

	// GetByID retrieves a single entry by ID
	GetByID(ctx context.Context, id string) (*Entry, error)

	// List retrieves entries matching the filter, newest first
	List(ctx context.Context, f Filter, skip, limit int) ([]*Entry, error)
}
