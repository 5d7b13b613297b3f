package client

import (
	"context"
	"net/http"
)

// AlertService handles alert lifecycle API calls
type AlertService struct {
	client *Client
}

// CreateAlertRequest is a request to raise an alert
type CreateAlertRequest struct {
	ResourceID  string                 `json:"resource_id,omitempty"`
	IncidentID  string                 `json:"incident_id,omitempty"`
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Severity    string                 `json:"severity"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

type actorRequest struct {
	Actor string `json:"actor,omitempty"`
}

// List retrieves alerts, newest first
func (s *AlertService) List(ctx context.Context, opts *ListOptions) ([]Alert, error) {
	var alerts []Alert
	err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/alerts"+listQuery(opts), nil, &alerts)
	return alerts, err
}

// Get retrieves an alert by ID
func (s *AlertService) Get(ctx context.Context, id string) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/alerts/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create raises an alert without delivering it
func (s *AlertService) Create(ctx context.Context, req CreateAlertRequest) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/alerts", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Deliver fans the alert out to the configured channels
func (s *AlertService) Deliver(ctx context.Context, id string) (*DeliveryResult, error) {
	var res DeliveryResult
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/alerts/"+id+"/deliver", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Resolve resolves an alert; resolving twice is a no-op
func (s *AlertService) Resolve(ctx context.Context, id, actor string) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/alerts/"+id+"/resolve", actorRequest{Actor: actor}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Acknowledge acknowledges an active alert
func (s *AlertService) Acknowledge(ctx context.Context, id, actor string) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/alerts/"+id+"/acknowledge", actorRequest{Actor: actor}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
