package product

import "context"

// Repository defines the interface for product data access
type Repository interface {
	// Create creates a new product
	Create(ctx context.Context, p *Product) error

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id string) (*Product, error)

	// GetByName retrieves a product by its unique name
	GetByName(ctx context.Context, name string) (*Product, error)

	// Update updates a product
	Update(ctx context.Context, p *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id string) error

	// List retrieves products ordered by creation time, newest first
	List(ctx context.Context, skip, limit int) ([]*Product, error)
}
