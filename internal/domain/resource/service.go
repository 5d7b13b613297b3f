package resource

import "context"

// Service defines the interface for resource business logic.
// The alerting core only reads resources; writes exist to register
// entities for monitoring.
type Service interface {
	// Create registers a new resource under a product
	Create(ctx context.Context, r *Resource) (*Resource, error)

	// GetByID retrieves a resource by ID
	GetByID(ctx context.Context, id string) (*Resource, error)

	// Update updates a resource's mutable fields
	Update(ctx context.Context, r *Resource) (*Resource, error)

	// List retrieves resources with pagination
	List(ctx context.Context, skip, limit int) ([]*Resource, error)
}
