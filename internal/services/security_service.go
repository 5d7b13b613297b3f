package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
)

// Security event types the classifier recognizes, mapped to the
// severity of the alert they raise.
var securityEventSeverity = map[string]string{
	"unauthorized_access":  alert.SeverityCritical,
	"privilege_escalation": alert.SeverityCritical,
	"resource_exposure":    alert.SeverityCritical,
	"configuration_change": alert.SeverityWarning,
	"policy_violation":     alert.SeverityWarning,
}

// SecurityEvent is an inbound event to classify
type SecurityEvent struct {
	EventType  string
	ResourceID string
	Actor      string
	Details    map[string]interface{}
}

// SecurityService classifies security events into alerts. Each
// recognized event raises one alert, delivers it, and leaves two ledger
// entries: the alert_generated entry from delivery plus a
// security_event_detected entry linking back to the event.
type SecurityService struct {
	resources resource.Repository
	alerts    alert.Service
	audit     audit.Service
	logger    *logger.Logger
}

// NewSecurityService creates a new security service
func NewSecurityService(resources resource.Repository, alerts alert.Service, auditSvc audit.Service, log *logger.Logger) *SecurityService {
	return &SecurityService{
		resources: resources,
		alerts:    alerts,
		audit:     auditSvc,
		logger:    log,
	}
}

// SupportedEventTypes returns the recognized event types in stable order
func (s *SecurityService) SupportedEventTypes() []string {
	types := make([]string, 0, len(securityEventSeverity))
	for t := range securityEventSeverity {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ClassifySeverity maps an event type to the severity of the alert it
// raises. The second return is false for unrecognized types.
func ClassifySeverity(eventType string) (string, bool) {
	sev, ok := securityEventSeverity[eventType]
	return sev, ok
}

// DetectEvent classifies the event and raises a security alert against
// an existing resource. An unrecognized event type or unknown resource
// is rejected before anything is written. The notification outcome is
// ignored: a fully failed fan-out does not fail detection, and both
// ledger entries are written either way.
func (s *SecurityService) DetectEvent(ctx context.Context, ev SecurityEvent) (*alert.Alert, error) {
	severity, ok := ClassifySeverity(ev.EventType)
	if !ok {
		return nil, errors.InvalidEventType(ev.EventType)
	}

	r, err := s.resources.GetByID(ctx, ev.ResourceID)
	if err != nil {
		return nil, err
	}

	actor := ev.Actor
	if actor == "" {
		actor = "system"
	}

	details := map[string]interface{}{
		"event_type": ev.EventType,
	}
	for k, v := range ev.Details {
		details[k] = v
	}

	label := eventTypeLabel(ev.EventType)
	a, err := s.alerts.Create(ctx, &alert.Alert{
		ResourceID:  r.ID,
		Type:        alert.TypeSecurity,
		Title:       "Security Event: " + label,
		Description: fmt.Sprintf("%s detected on resource %s", label, r.Name),
		Severity:    severity,
		Details:     details,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.alerts.Deliver(ctx, a.ID); err != nil {
		if !errors.IsDeliveryFailed(err) {
			// Ledger write failures are fatal; an undelivered alert
			// is not.
			return nil, err
		}
		s.logger.With("alert_id", a.ID).Warn("Security alert not delivered on any channel")
	}

	if _, err := s.audit.Record(ctx, &audit.Entry{
		AlertID:   a.ID,
		EventType: audit.EventSecurityDetected,
		Actor:     actor,
		Details:   details,
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":    a.ID,
		"resource_id": r.ID,
		"event_type":  ev.EventType,
		"severity":    severity,
	}).Info("Security event detected")

	return a, nil
}

// eventTypeLabel turns "privilege_escalation" into "Privilege Escalation"
func eventTypeLabel(eventType string) string {
	words := strings.Split(eventType, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
