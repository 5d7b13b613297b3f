package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
)

// AuditHandler exposes read access to the ledger. There is no write
// endpoint; entries come only from the lifecycle services.
type AuditHandler struct {
	service audit.Service
	logger  *logger.Logger
}

func NewAuditHandler(service audit.Service, log *logger.Logger) *AuditHandler {
	return &AuditHandler{service: service, logger: log}
}

// List returns ledger entries, newest first, optionally filtered by
// incident_id, alert_id, or event_type
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageParams(r)
	filter := audit.Filter{
		IncidentID: r.URL.Query().Get("incident_id"),
		AlertID:    r.URL.Query().Get("alert_id"),
		EventType:  r.URL.Query().Get("event_type"),
	}

	entries, err := h.service.List(r.Context(), filter, page.Skip, page.Limit)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list audit entries")
		return
	}

	dtos := make([]dto.AuditEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toAuditEntryDTO(e)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Get returns a single ledger entry by ID
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get audit entry")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toAuditEntryDTO(e))
}

func toAuditEntryDTO(e *audit.Entry) dto.AuditEntryDTO {
	return dto.AuditEntryDTO{
		ID:         e.ID,
		IncidentID: e.IncidentID,
		AlertID:    e.AlertID,
		EventType:  e.EventType,
		EventTime:  e.EventTime,
		Actor:      e.Actor,
		Details:    e.Details,
	}
}
