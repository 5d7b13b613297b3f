package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/metrics"
)

// Notifier fans a message out to the configured channels and reports
// the per-channel outcomes
type Notifier interface {
	Dispatch(ctx context.Context, subject, body string) map[string]bool
}

// AlertService implements alert.Service. It owns the lifecycle and is
// the sole writer of alert audit entries.
type AlertService struct {
	repo     alert.Repository
	audit    audit.Service
	notifier Notifier
	logger   *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(repo alert.Repository, auditSvc audit.Service, notifier Notifier, log *logger.Logger) alert.Service {
	return &AlertService{
		repo:     repo,
		audit:    auditSvc,
		notifier: notifier,
		logger:   log,
	}
}

var validSeverities = map[string]bool{
	alert.SeverityCritical: true,
	alert.SeverityWarning:  true,
	alert.SeverityInfo:     true,
}

var validAlertTypes = map[string]bool{
	alert.TypeResource:         true,
	alert.TypeSecurity:         true,
	alert.TypeMisconfiguration: true,
}

// Create creates a new active alert. Creation writes no audit entry;
// the generation fact is recorded by Deliver together with its
// notification outcomes.
func (s *AlertService) Create(ctx context.Context, a *alert.Alert) (*alert.Alert, error) {
	if a.Title == "" {
		return nil, errors.BadRequest("Alert title is required")
	}
	if !validAlertTypes[a.Type] {
		return nil, errors.BadRequest("Invalid alert type: " + a.Type)
	}
	if !validSeverities[a.Severity] {
		return nil, errors.BadRequest("Invalid alert severity: " + a.Severity)
	}

	a.ID = uuid.NewString()
	a.Status = alert.StatusActive
	a.TriggeredAt = time.Now()
	a.ResolvedAt = nil

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create alert")
		return nil, err
	}

	metrics.RecordAlertGenerated(a.Type, a.Severity)

	s.logger.WithFields(map[string]interface{}{
		"alert_id": a.ID,
		"type":     a.Type,
		"severity": a.Severity,
	}).Info("Alert created")

	return a, nil
}

// Deliver fans the alert out to all channels and records exactly one
// alert_generated entry carrying the outcomes. The entry is written
// whether or not any channel succeeded; only after it is durable does
// a fully failed fan-out surface as DeliveryFailed.
func (s *AlertService) Deliver(ctx context.Context, alertID string) (bool, error) {
	a, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		return false, err
	}

	subject := fmt.Sprintf("[%s] %s", a.Severity, a.Title)
	outcomes := s.notifier.Dispatch(ctx, subject, a.Description)

	anySent := false
	details := map[string]interface{}{
		"severity": a.Severity,
		"type":     a.Type,
	}
	for channel, sent := range outcomes {
		details[channel+"_sent"] = sent
		if sent {
			anySent = true
		}
	}

	if _, err := s.audit.Record(ctx, &audit.Entry{
		AlertID:    a.ID,
		IncidentID: a.IncidentID,
		EventType:  audit.EventAlertGenerated,
		Details:    details,
	}); err != nil {
		// The ledger is the source of truth; without the entry the
		// delivery attempt did not happen.
		return false, err
	}

	if !anySent {
		return false, errors.DeliveryFailed("No notification channel accepted the alert")
	}

	return true, nil
}

// Resolve resolves an alert. Resolving an already-resolved alert
// returns it unchanged and writes nothing.
func (s *AlertService) Resolve(ctx context.Context, alertID, actor string) (*alert.Alert, error) {
	if actor == "" {
		actor = "system"
	}

	a, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if a.Resolved() {
		return a, nil
	}

	now := time.Now()
	transitioned, err := s.repo.MarkResolved(ctx, alertID, now)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		// A concurrent resolver won; return the settled row.
		return s.repo.GetByID(ctx, alertID)
	}

	a.Status = alert.StatusResolved
	a.ResolvedAt = &now

	if _, err := s.audit.Record(ctx, &audit.Entry{
		AlertID:    a.ID,
		IncidentID: a.IncidentID,
		EventType:  audit.EventAlertResolved,
		Actor:      actor,
		Details: map[string]interface{}{
			"resolved_at": now.UTC().Format(time.RFC3339Nano),
		},
	}); err != nil {
		return nil, err
	}

	metrics.RecordAlertResolved()

	s.logger.WithFields(map[string]interface{}{
		"alert_id": a.ID,
		"actor":    actor,
	}).Info("Alert resolved")

	return a, nil
}

// Acknowledge acknowledges an active alert. Acknowledging an already
// acknowledged alert is a no-op; a resolved alert stays resolved.
func (s *AlertService) Acknowledge(ctx context.Context, alertID, actor string) (*alert.Alert, error) {
	if actor == "" {
		actor = "system"
	}

	a, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if a.Status != alert.StatusActive {
		return a, nil
	}

	transitioned, err := s.repo.MarkAcknowledged(ctx, alertID)
	if err != nil {
		return nil, err
	}
	if !transitioned {
		return s.repo.GetByID(ctx, alertID)
	}

	a.Status = alert.StatusAcknowledged

	if _, err := s.audit.Record(ctx, &audit.Entry{
		AlertID:    a.ID,
		IncidentID: a.IncidentID,
		EventType:  audit.EventAlertAcknowledged,
		Actor:      actor,
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id": a.ID,
		"actor":    actor,
	}).Info("Alert acknowledged")

	return a, nil
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves alerts with pagination, newest first
func (s *AlertService) List(ctx context.Context, skip, limit int) ([]*alert.Alert, error) {
	return s.repo.List(ctx, skip, limit)
}
