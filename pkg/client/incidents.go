package client

import (
	"context"
	"net/http"
)

// IncidentService handles incident-related API calls
type IncidentService struct {
	client *Client
}

// CreateIncidentRequest is a request to open an incident
type CreateIncidentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Severity    string `json:"severity,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
}

// List retrieves non-archived incidents
func (s *IncidentService) List(ctx context.Context, opts *ListOptions) ([]Incident, error) {
	var incidents []Incident
	err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/incidents"+listQuery(opts), nil, &incidents)
	return incidents, err
}

// Get retrieves an incident by ID
func (s *IncidentService) Get(ctx context.Context, id string) (*Incident, error) {
	var in Incident
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/incidents/"+id, nil, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Create opens an incident
func (s *IncidentService) Create(ctx context.Context, req CreateIncidentRequest) (*Incident, error) {
	var in Incident
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/incidents", req, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// UpdateStatus moves an incident through its workflow
func (s *IncidentService) UpdateStatus(ctx context.Context, id, status string) (*Incident, error) {
	req := struct {
		Status string `json:"status"`
	}{Status: status}

	var in Incident
	if err := s.client.doRequest(ctx, http.MethodPut, "/api/v1/incidents/"+id+"/status", req, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Close closes an incident
func (s *IncidentService) Close(ctx context.Context, id string) (*Incident, error) {
	var in Incident
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/incidents/"+id+"/close", nil, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Archive hides an incident from listings; its alerts and ledger
// entries are untouched
func (s *IncidentService) Archive(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, http.MethodDelete, "/api/v1/incidents/"+id, nil, nil)
}
