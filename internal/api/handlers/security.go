package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
	"github.com/pratik-mahalle/cloudsentry/internal/services"
)

type SecurityHandler struct {
	service   *services.SecurityService
	logger    *logger.Logger
	validator *validator.Validator
}

func NewSecurityHandler(service *services.SecurityService, log *logger.Logger, val *validator.Validator) *SecurityHandler {
	return &SecurityHandler{service: service, logger: log, validator: val}
}

// Detect classifies a security event and raises its alert. An
// unrecognized event type or unknown resource is rejected before
// anything is written; the notification outcome does not affect the
// response.
func (h *SecurityHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req dto.DetectSecurityEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	a, err := h.service.DetectEvent(r.Context(), services.SecurityEvent{
		EventType:  req.EventType,
		ResourceID: req.ResourceID,
		Actor:      req.Actor,
		Details:    req.Details,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to process security event")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, toAlertDTO(a))
}

// EventTypes lists the recognized security event types
func (h *SecurityHandler) EventTypes(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, dto.SecurityEventTypesDTO{
		EventTypes: h.service.SupportedEventTypes(),
	})
}
