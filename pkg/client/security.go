package client

import (
	"context"
	"net/http"
)

// SecurityService handles security event API calls
type SecurityService struct {
	client *Client
}

// DetectEventRequest is a request to report a security event
type DetectEventRequest struct {
	EventType  string                 `json:"event_type"`
	ResourceID string                 `json:"resource_id"`
	Actor      string                 `json:"actor,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Detect reports a security event and returns the raised alert
func (s *SecurityService) Detect(ctx context.Context, req DetectEventRequest) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/security-events", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// EventTypes lists the recognized security event types
func (s *SecurityService) EventTypes(ctx context.Context) ([]string, error) {
	var resp struct {
		EventTypes []string `json:"event_types"`
	}
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/security-events/types", nil, &resp); err != nil {
		return nil, err
	}
	return resp.EventTypes, nil
}
