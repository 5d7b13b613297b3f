package alert

import "time"

// Alert represents an alert generated for a resource or security event.
// Alerts are never deleted; they are retained for the audit trail.
type Alert struct {
	ID          string                 `json:"id"`
	ResourceID  string                 `json:"resource_id,omitempty"`
	IncidentID  string                 `json:"incident_id,omitempty"`
	Type        string                 `json:"type"`
	Status      string                 `json:"status"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Severity    string                 `json:"severity"`
	TriggeredAt time.Time              `json:"triggered_at"`
	ResolvedAt  *time.Time             `json:"resolved_at,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// Alert types
const (
	TypeResource         = "resource"
	TypeSecurity         = "security"
	TypeMisconfiguration = "misconfiguration"
)

// Alert status. The lifecycle is active -> acknowledged -> resolved or
// active -> resolved; resolved is terminal.
const (
	StatusActive       = "active"
	StatusAcknowledged = "acknowledged"
	StatusResolved     = "resolved"
)

// Alert severity tiers
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Resolved reports whether the alert has reached its terminal state
func (a *Alert) Resolved() bool {
	return a.Status == StatusResolved
}
