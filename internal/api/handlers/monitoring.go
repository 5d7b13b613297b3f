package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/cloudsentry/internal/api/dto"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/monitoring"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/utils"
	"github.com/pratik-mahalle/cloudsentry/internal/services"
)

type MonitoringHandler struct {
	service *services.MonitorService
	logger  *logger.Logger
}

func NewMonitoringHandler(service *services.MonitorService, log *logger.Logger) *MonitoringHandler {
	return &MonitoringHandler{service: service, logger: log}
}

// CollectResource runs a collection pass over one resource
func (h *MonitoringHandler) CollectResource(w http.ResponseWriter, r *http.Request) {
	rm, err := h.service.CollectResource(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteAppError(w, err, "Failed to collect resource metrics")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toResourceMetricsDTO(rm))
}

// CollectAll runs a collection pass over one page of resources
func (h *MonitoringHandler) CollectAll(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePageParams(r)

	results, err := h.service.CollectAll(r.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to run collection pass")
		return
	}

	dtos := make([]dto.ResourceMetricsDTO, len(results))
	for i, rm := range results {
		dtos[i] = toResourceMetricsDTO(rm)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

func toResourceMetricsDTO(rm *monitoring.ResourceMetrics) dto.ResourceMetricsDTO {
	breaches := make([]dto.BreachDTO, len(rm.Breaches))
	for i, b := range rm.Breaches {
		breaches[i] = dto.BreachDTO{
			Metric:    b.Metric,
			Value:     b.Value,
			Threshold: b.Threshold,
		}
	}
	return dto.ResourceMetricsDTO{
		ResourceID:  rm.ResourceID,
		CollectedAt: rm.CollectedAt,
		Values:      rm.Values,
		Breaches:    breaches,
	}
}
