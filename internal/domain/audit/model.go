package audit

import "time"

// Entry is a single row of the append-only audit ledger. Entries are
// written once and never updated or deleted.
type Entry struct {
	ID         string                 `json:"id"`
	IncidentID string                 `json:"incident_id,omitempty"`
	AlertID    string                 `json:"alert_id,omitempty"`
	EventType  string                 `json:"event_type"`
	EventTime  time.Time              `json:"event_time"`
	Actor      string                 `json:"actor,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Ledger event types
const (
	EventAlertGenerated    = "alert_generated"
	EventAlertResolved     = "alert_resolved"
	EventAlertAcknowledged = "alert_acknowledged"
	EventSecurityDetected  = "security_event_detected"
	EventIncidentCreated   = "incident_created"
	EventIncidentArchived  = "incident_archived"
)

// Filter narrows a ledger listing. Zero values mean no constraint.
type Filter struct {
	IncidentID string
	AlertID    string
	EventType  string
}
