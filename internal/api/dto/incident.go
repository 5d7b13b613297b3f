package dto

import "time"

// CreateIncidentRequest is the request body for opening an incident
type CreateIncidentRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Severity    string `json:"severity,omitempty" validate:"omitempty,oneof=critical warning info"`
	CreatedBy   string `json:"created_by,omitempty" validate:"max=255"`
}

// UpdateIncidentStatusRequest moves an incident through its workflow
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

// IncidentDTO is the API representation of an incident
type IncidentDTO struct {
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
