package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
)

type AlertHandler struct {
	service   alert.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAlertHandler(service alert.Service, log *logger.Logger, val *validator.Validator) *AlertHandler {
	return &AlertHandler{service: service, logger: log, validator: val}
}

// Create raises a new alert without delivering it
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	a, err := h.service.Create(r.Context(), &alert.Alert{
		ResourceID:  req.ResourceID,
		IncidentID:  req.IncidentID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		Details:     req.Details,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create alert")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, toAlertDTO(a))
}

// Get returns a single alert by ID
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toAlertDTO(a))
}

// List returns alerts with pagination, newest first
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageParams(r)

	alerts, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list alerts")
		return
	}

	dtos := make([]dto.AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = toAlertDTO(a)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Deliver fans the alert out to the configured notification channels.
// A fully failed fan-out returns 502; the attempt is on the ledger
// either way.
func (h *AlertHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	delivered, err := h.service.Deliver(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to deliver alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.DeliveryResultDTO{
		AlertID:   id,
		Delivered: delivered,
	})
}

// Resolve resolves an alert; repeated calls are no-ops
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	actor := h.decodeActor(w, r)

	a, err := h.service.Resolve(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to resolve alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toAlertDTO(a))
}

// Acknowledge acknowledges an active alert
func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	actor := h.decodeActor(w, r)

	a, err := h.service.Acknowledge(r.Context(), chi.URLParam(r, "id"), actor)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to acknowledge alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toAlertDTO(a))
}

// decodeActor reads the optional actor from the request body. An empty
// or absent body is fine.
func (h *AlertHandler) decodeActor(w http.ResponseWriter, r *http.Request) string {
	var req dto.ResolveAlertRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	return req.Actor
}

func toAlertDTO(a *alert.Alert) dto.AlertDTO {
	return dto.AlertDTO{
		ID:          a.ID,
		ResourceID:  a.ResourceID,
		IncidentID:  a.IncidentID,
		Type:        a.Type,
		Status:      a.Status,
		Title:       a.Title,
		Description: a.Description,
		Severity:    a.Severity,
		TriggeredAt: a.TriggeredAt,
		ResolvedAt:  a.ResolvedAt,
		Details:     a.Details,
	}
}
