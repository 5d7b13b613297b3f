package client

import (
	"context"
	"net/http"
)

// ResourceService handles resource-related API calls
type ResourceService struct {
	client *Client
}

// CreateResourceRequest is a request to register a resource
type CreateResourceRequest struct {
	ProductID         string                 `json:"product_id"`
	Name              string                 `json:"name"`
	CloudID           string                 `json:"cloud_id"`
	CloudProvider     string                 `json:"cloud_provider"`
	ResourceType      string                 `json:"resource_type"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	MonitoringEnabled *bool                  `json:"monitoring_enabled,omitempty"`
}

// ResourceMetrics is the result of a collection pass
type ResourceMetrics struct {
	ResourceID  string              `json:"resource_id"`
	CollectedAt string              `json:"collected_at"`
	Values      map[string]*float64 `json:"values"`
	Breaches    []Breach            `json:"breaches"`
}

// Breach is a metric threshold breach
type Breach struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
}

// List retrieves resources
func (s *ResourceService) List(ctx context.Context, opts *ListOptions) ([]Resource, error) {
	var resources []Resource
	err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/resources"+listQuery(opts), nil, &resources)
	return resources, err
}

// Get retrieves a resource by ID
func (s *ResourceService) Get(ctx context.Context, id string) (*Resource, error) {
	var r Resource
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/resources/"+id, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create registers a resource
func (s *ResourceService) Create(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	var r Resource
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/resources", req, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Collect runs a metric collection pass over a resource
func (s *ResourceService) Collect(ctx context.Context, id string) (*ResourceMetrics, error) {
	var rm ResourceMetrics
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/resources/"+id+"/collect", nil, &rm); err != nil {
		return nil, err
	}
	return &rm, nil
}
