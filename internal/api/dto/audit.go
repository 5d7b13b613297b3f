package dto

import "time"

// AuditEntryDTO is the API representation of a ledger entry
type AuditEntryDTO struct {
	ID         string                 `json:"id"`
	IncidentID string                 `json:"incident_id,omitempty"`
	AlertID    string                 `json:"alert_id,omitempty"`
	EventType  string                 `json:"event_type"`
	EventTime  time.Time              `json:"event_time"`
	Actor      string                 `json:"actor,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}
