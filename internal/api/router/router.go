package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pratik-mahalle/cloudsentry/internal/api/handlers"
	"github.com/pratik-mahalle/cloudsentry/internal/api/middleware"
	"github.com/pratik-mahalle/cloudsentry/internal/config"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/metrics"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Product    *handlers.ProductHandler
	Resource   *handlers.ResourceHandler
	Alert      *handlers.AlertHandler
	Incident   *handlers.IncidentHandler
	Audit      *handlers.AuditHandler
	Security   *handlers.SecurityHandler
	Monitoring *handlers.MonitoringHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Health checks and metrics
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.Handler())

	// Products
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.Product.List)
		r.Post("/", h.Product.Create)
		r.Get("/{id}", h.Product.Get)
		r.Put("/{id}", h.Product.Update)
		r.Delete("/{id}", h.Product.Delete)
	})

	// Resources
	r.Route("/api/v1/resources", func(r chi.Router) {
		r.Get("/", h.Resource.List)
		r.Post("/", h.Resource.Create)
		r.Get("/{id}", h.Resource.Get)
		r.Put("/{id}", h.Resource.Update)
		r.Post("/{id}/collect", h.Monitoring.CollectResource)
	})

	// Alerts
	r.Route("/api/v1/alerts", func(r chi.Router) {
		r.Get("/", h.Alert.List)
		r.Post("/", h.Alert.Create)
		r.Get("/{id}", h.Alert.Get)
		r.Post("/{id}/deliver", h.Alert.Deliver)
		r.Post("/{id}/resolve", h.Alert.Resolve)
		r.Post("/{id}/acknowledge", h.Alert.Acknowledge)
	})

	// Incidents
	r.Route("/api/v1/incidents", func(r chi.Router) {
		r.Get("/", h.Incident.List)
		r.Post("/", h.Incident.Create)
		r.Get("/{id}", h.Incident.Get)
		r.Put("/{id}/status", h.Incident.UpdateStatus)
		r.Post("/{id}/close", h.Incident.Close)
		r.Delete("/{id}", h.Incident.Archive)
	})

	// Audit ledger (read-only)
	r.Route("/api/v1/audit-log", func(r chi.Router) {
		r.Get("/", h.Audit.List)
		r.Get("/{id}", h.Audit.Get)
	})

	// Security events
	r.Route("/api/v1/security-events", func(r chi.Router) {
		r.Post("/", h.Security.Detect)
		r.Get("/types", h.Security.EventTypes)
	})

	// Monitoring
	r.Post("/api/v1/monitoring/collect", h.Monitoring.CollectAll)

	return r
}
