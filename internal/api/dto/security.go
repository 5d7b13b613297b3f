package dto

// DetectSecurityEventRequest is the request body for reporting a
// security event. The alert description is derived from the resource,
// and an absent actor is recorded as "system".
type DetectSecurityEventRequest struct {
	EventType  string                 `json:"event_type" validate:"required"`
	ResourceID string                 `json:"resource_id" validate:"required,uuid"`
	Actor      string                 `json:"actor,omitempty" validate:"max=255"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// SecurityEventTypesDTO lists the recognized event types
type SecurityEventTypesDTO struct {
	EventTypes []string `json:"event_types"`
}
