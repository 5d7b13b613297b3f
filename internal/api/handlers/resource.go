package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
)

type ResourceHandler struct {
	service   resource.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewResourceHandler(service resource.Service, log *logger.Logger, val *validator.Validator) *ResourceHandler {
	return &ResourceHandler{service: service, logger: log, validator: val}
}

// Create registers a new resource
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	monitoring := true
	if req.MonitoringEnabled != nil {
		monitoring = *req.MonitoringEnabled
	}

	res, err := h.service.Create(r.Context(), &resource.Resource{
		ProductID:         req.ProductID,
		Name:              req.Name,
		CloudID:           req.CloudID,
		CloudProvider:     req.CloudProvider,
		ResourceType:      req.ResourceType,
		Metadata:          req.Metadata,
		MonitoringEnabled: monitoring,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create resource")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, toResourceDTO(res))
}

// Get returns a single resource by ID
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get resource")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toResourceDTO(res))
}

// List returns resources with pagination
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageParams(r)

	resources, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list resources")
		return
	}

	dtos := make([]dto.ResourceDTO, len(resources))
	for i, res := range resources {
		dtos[i] = toResourceDTO(res)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Update updates a resource's mutable fields
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	existing, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get resource")
		return
	}

	update := &resource.Resource{
		ID:                existing.ID,
		Name:              req.Name,
		Metadata:          req.Metadata,
		MonitoringEnabled: existing.MonitoringEnabled,
	}
	if req.MonitoringEnabled != nil {
		update.MonitoringEnabled = *req.MonitoringEnabled
	}

	res, err := h.service.Update(r.Context(), update)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to update resource")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toResourceDTO(res))
}

func toResourceDTO(res *resource.Resource) dto.ResourceDTO {
	return dto.ResourceDTO{
		ID:                res.ID,
		ProductID:         res.ProductID,
		Name:              res.Name,
		CloudID:           res.CloudID,
		CloudProvider:     res.CloudProvider,
		ResourceType:      res.ResourceType,
		Metadata:          res.Metadata,
		MonitoringEnabled: res.MonitoringEnabled,
		CreatedAt:         res.CreatedAt,
		UpdatedAt:         res.UpdatedAt,
	}
}
