package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AuditService handles audit ledger API calls
type AuditService struct {
	client *Client
}

// AuditListOptions contains options for listing ledger entries
type AuditListOptions struct {
	ListOptions
	IncidentID string
	AlertID    string
	EventType  string
}

// List retrieves ledger entries, newest first
func (s *AuditService) List(ctx context.Context, opts *AuditListOptions) ([]AuditEntry, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Skip > 0 {
			query.Set("skip", strconv.Itoa(opts.Skip))
		}
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.IncidentID != "" {
			query.Set("incident_id", opts.IncidentID)
		}
		if opts.AlertID != "" {
			query.Set("alert_id", opts.AlertID)
		}
		if opts.EventType != "" {
			query.Set("event_type", opts.EventType)
		}
	}

	path := "/api/v1/audit-log"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var entries []AuditEntry
	err := s.client.doRequest(ctx, http.MethodGet, path, nil, &entries)
	return entries, err
}

// Get retrieves a single ledger entry by ID
func (s *AuditService) Get(ctx context.Context, id string) (*AuditEntry, error) {
	var e AuditEntry
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/audit-log/"+id, nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
