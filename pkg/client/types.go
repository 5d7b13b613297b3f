package client

import "time"

// ListOptions contains skip/limit pagination options
type ListOptions struct {
	Skip  int
	Limit int
}

// Product is a product for which cloud resources are provisioned
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resource is a provisioned cloud resource
type Resource struct {
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

// Alert is a raised alert
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

// DeliveryResult reports a notification fan-out
type DeliveryResult struct {
	AlertID   string `json:"alert_id"`
	Delivered bool   `json:"delivered"`
}

// Incident is a tracked operational incident
type Incident struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Severity    string     `json:"severity"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// AuditEntry is a row of the append-only ledger
type AuditEntry struct {
	ID         string                 `json:"id"`
	IncidentID string                 `json:"incident_id,omitempty"`
	AlertID    string                 `json:"alert_id,omitempty"`
	EventType  string                 `json:"event_type"`
	EventTime  time.Time              `json:"event_time"`
	Actor      string                 `json:"actor,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
}
