package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/product"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/validator"
)

type ProductHandler struct {
	service   product.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewProductHandler(service product.Service, log *logger.Logger, val *validator.Validator) *ProductHandler {
	return &ProductHandler{service: service, logger: log, validator: val}
}

// Create creates a new product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create product")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, toProductDTO(p))
}

// Get returns a single product by ID
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get product")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toProductDTO(p))
}

// List returns products with pagination
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageParams(r)

	products, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list products")
		return
	}

	dtos := make([]dto.ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = toProductDTO(p)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Update updates a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Description)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to update product")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toProductDTO(p))
}

// Delete deletes a product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		utils.WriteAppError(w, err, "Failed to delete product")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Product deleted", nil)
}

func toProductDTO(p *product.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
