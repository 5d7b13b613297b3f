package product

import "context"

// Service defines the interface for product business logic
type Service interface {
	// Create creates a new product; a duplicate name is a conflict
	Create(ctx context.Context, name, description string) (*Product, error)

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id string) (*Product, error)

	// Update updates a product's name and/or description
	Update(ctx context.Context, id string, name, description *string) (*Product, error)

	// Delete deletes a product
	Delete(ctx context.Context, id string) error

	// List retrieves products with pagination
	List(ctx context.Context, skip, limit int) ([]*Product, error)
}
