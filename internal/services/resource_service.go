package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/product"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
)

// ResourceService implements resource.Service
type ResourceService struct {
	repo     resource.Repository
	products product.Repository
	logger   *logger.Logger
}

// NewResourceService creates a new resource service
func NewResourceService(repo resource.Repository, products product.Repository, log *logger.Logger) resource.Service {
	return &ResourceService{
		repo:     repo,
		products: products,
		logger:   log,
	}
}

// Create registers a new resource under a product
func (s *ResourceService) Create(ctx context.Context, r *resource.Resource) (*resource.Resource, error) {
	if r.Name == "" || r.CloudID == "" {
		return nil, errors.BadRequest("Resource name and cloud ID are required")
	}

	// The parent product must exist
	if _, err := s.products.GetByID(ctx, r.ProductID); err != nil {
		return nil, err
	}

	r.ID = uuid.NewString()

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create resource")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"resource_id": r.ID,
		"product_id":  r.ProductID,
		"provider":    r.CloudProvider,
	}).Info("Resource registered")

	return r, nil
}

// GetByID retrieves a resource by ID
func (s *ResourceService) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

// Update updates a resource's mutable fields
func (s *ResourceService) Update(ctx context.Context, r *resource.Resource) (*resource.Resource, error) {
	existing, err := s.repo.GetByID(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	if r.Name != "" {
		existing.Name = r.Name
	}
	if r.Metadata != nil {
		existing.Metadata = r.Metadata
	}
	existing.MonitoringEnabled = r.MonitoringEnabled

	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update resource")
		return nil, err
	}

	return existing, nil
}

// List retrieves resources with pagination
func (s *ResourceService) List(ctx context.Context, skip, limit int) ([]*resource.Resource, error) {
	return s.repo.List(ctx, skip, limit)
}
