package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/incident"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
)

type IncidentHandler struct {
	service   incident.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewIncidentHandler(service incident.Service, log *logger.Logger, val *validator.Validator) *IncidentHandler {
	return &IncidentHandler{service: service, logger: log, validator: val}
}

// Create opens a new incident
func (h *IncidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	in, err := h.service.Create(r.Context(), &incident.Incident{
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create incident")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, toIncidentDTO(in))
}

// Get returns a single incident by ID
func (h *IncidentHandler) Get(w http.ResponseWriter, r *http.Request) {
	in, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get incident")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toIncidentDTO(in))
}

// List returns non-archived incidents with pagination
func (h *IncidentHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageParams(r)

	incidents, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list incidents")
		return
	}

	dtos := make([]dto.IncidentDTO, len(incidents))
	for i, in := range incidents {
		dtos[i] = toIncidentDTO(in)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// UpdateStatus moves an incident through its workflow
func (h *IncidentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateIncidentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	in, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to update incident")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toIncidentDTO(in))
}

// Close closes an incident
func (h *IncidentHandler) Close(w http.ResponseWriter, r *http.Request) {
	in, err := h.service.Close(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to close incident")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toIncidentDTO(in))
}

// Archive hides an incident from listings. Alerts and ledger entries
// referencing it stay put.
func (h *IncidentHandler) Archive(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.WriteAppError(w, err, "Failed to archive incident")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Incident archived", nil)
}

func toIncidentDTO(in *incident.Incident) dto.IncidentDTO {
	return dto.IncidentDTO{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Severity:    in.Severity,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
		ClosedAt:    in.ClosedAt,
		ArchivedAt:  in.ArchivedAt,
	}
}
