package dto

import "time"

// CreateResourceRequest is the request body for registering a resource
type CreateResourceRequest struct {
	ProductID         string                 `json:"product_id" validate:"required,uuid"`
	Name              string                 `json:"name" validate:"required,min=1,max=255"`
	CloudID           string                 `json:"cloud_id" validate:"required"`
	CloudProvider     string                 `json:"cloud_provider" validate:"required,oneof=aws gcp azure"`
	ResourceType      string                 `json:"resource_type" validate:"required"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	MonitoringEnabled *bool                  `json:"monitoring_enabled,omitempty"`
}

// UpdateResourceRequest is the request body for updating a resource
type UpdateResourceRequest struct {
	Name              string                 `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	MonitoringEnabled *bool                  `json:"monitoring_enabled,omitempty"`
}

// ResourceDTO is the API representation of a resource
type ResourceDTO struct {
	ID                string                 `json:"id"`
	ProductID         string                 `json:"product_id"`
	Name              string                 `json:"name"`
	CloudID           string                 `json:"cloud_id"`
	CloudProvider     string                 `json:"cloud_provider"`
	ResourceType      string                 `json:"resource_type"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	MonitoringEnabled bool                   `json:"monitoring_enabled"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}
