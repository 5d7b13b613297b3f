package dto

import "time"

// CreateAlertRequest is the request body for raising an alert manually
type CreateAlertRequest struct {
	ResourceID  string                 `json:"resource_id,omitempty" validate:"omitempty,uuid"`
	IncidentID  string                 `json:"incident_id,omitempty" validate:"omitempty,uuid"`
	Type        string                 `json:"type" validate:"required,oneof=resource security misconfiguration"`
	Title       string                 `json:"title" validate:"required,min=1,max=255"`
	Description string                 `json:"description" validate:"max=2000"`
	Severity    string                 `json:"severity" validate:"required,oneof=critical warning info"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// ResolveAlertRequest carries the actor resolving or acknowledging an alert
type ResolveAlertRequest struct {
	Actor string `json:"actor,omitempty" validate:"max=255"`
}

// AlertDTO is the API representation of an alert
type AlertDTO struct {
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

// DeliveryResultDTO reports a notification fan-out
type DeliveryResultDTO struct {
	AlertID   string `json:"alert_id"`
	Delivered bool   `json:"delivered"`
}
