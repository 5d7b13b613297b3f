package resource

import "context"

// Repository defines the interface for resource data access
type Repository interface {
	// Create creates a new resource
	Create(ctx context.Context, r *Resource) error

	// GetByID retrieves a resource by ID
	GetByID(ctx context.Context, id string) (*Resource, error)

	// GetByCloudID retrieves a resource by cloud-native id and provider
	GetByCloudID(ctx context.Context, cloudID, cloudProvider string) (*Resource, error)

	// Update updates a resource
	Update(ctx context.Context, r *Resource) error

	// List retrieves resources ordered by creation time, newest first
	List(ctx context.Context, skip, limit int) ([]*Resource, error)
}
