package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/product"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
)

// ProductService implements product.Service
type ProductService struct {
	repo   product.Repository
	logger *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(repo product.Repository, log *logger.Logger) product.Service {
	return &ProductService{
		repo:   repo,
		logger: log,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, name, description string) (*product.Product, error) {
	if name == "" {
		return nil, errors.BadRequest("Product name is required")
	}

	// Check the name early for a friendly conflict; the unique index
	// still backstops concurrent creates.
	if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil {
		return nil, errors.Conflict("Product with this name already exists")
	}

	p := &product.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create product")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": p.ID,
		"name":       p.Name,
	}).Info("Product created")

	return p, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a product's name and/or description
func (s *ProductService) Update(ctx context.Context, id string, name, description *string) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		p.Name = *name
	}
	if description != nil {
		p.Description = *description
	}

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update product")
		return nil, err
	}

	return p, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorWithErr(err, "Failed to delete product")
		return err
	}

	s.logger.With("product_id", id).Info("Product deleted")
	return nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	return s.repo.List(ctx, skip, limit)
}
