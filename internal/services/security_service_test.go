package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	apperrors "github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func newSecurityFixture(outcomes map[string]bool) (*SecurityService, *testutil.MockResourceRepository, *testutil.MockAlertRepository, *testutil.MockAuditRepository) {
	resourceRepo := testutil.NewMockResourceRepository()
	alertRepo := testutil.NewMockAlertRepository()
	auditRepo := testutil.NewMockAuditRepository()
	auditSvc := NewAuditService(auditRepo, testLog())
	alertSvc := NewAlertService(alertRepo, auditSvc, testutil.NewMockNotifier(outcomes), testLog())
	return NewSecurityService(resourceRepo, alertSvc, auditSvc, testLog()), resourceRepo, alertRepo, auditRepo
}

func TestSecurityService_DetectEventSeverity(t *testing.T) {
	tests := []struct {
		eventType    string
		wantSeverity string
	}{
		{"unauthorized_access", alert.SeverityCritical},
		{"privilege_escalation", alert.SeverityCritical},
		{"resource_exposure", alert.SeverityCritical},
		{"configuration_change", alert.SeverityWarning},
		{"policy_violation", alert.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			svc, resourceRepo, _, _ := newSecurityFixture(map[string]bool{"email": true})
			seedResource(resourceRepo, "res-1", true)

			a, err := svc.DetectEvent(context.Background(), SecurityEvent{
				EventType:  tt.eventType,
				ResourceID: "res-1",
				Actor:      "scanner",
			})
			if err != nil {
				t.Fatalf("DetectEvent() error = %v", err)
			}
			if a.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", a.Severity, tt.wantSeverity)
			}
			if a.Type != alert.TypeSecurity {
				t.Errorf("type = %s, want security", a.Type)
			}
		})
	}
}

func TestSecurityService_DetectEventDescribesResource(t *testing.T) {
	svc, resourceRepo, _, _ := newSecurityFixture(map[string]bool{"email": true})
	seedResource(resourceRepo, "res-1", true)

	a, err := svc.DetectEvent(context.Background(), SecurityEvent{
		EventType:  "privilege_escalation",
		ResourceID: "res-1",
	})
	if err != nil {
		t.Fatalf("DetectEvent() error = %v", err)
	}

	if a.Title != "Security Event: Privilege Escalation" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Description != "Privilege Escalation detected on resource web-res-1" {
		t.Errorf("description = %q, want the resource name referenced", a.Description)
	}
	if a.ResourceID != "res-1" {
		t.Errorf("resource = %s, want res-1", a.ResourceID)
	}
}

func TestSecurityService_DetectEventWritesTwoEntries(t *testing.T) {
	svc, resourceRepo, _, auditRepo := newSecurityFixture(map[string]bool{"email": true, "slack": true})
	seedResource(resourceRepo, "res-1", true)

	a, err := svc.DetectEvent(context.Background(), SecurityEvent{
		EventType:  "privilege_escalation",
		ResourceID: "res-1",
	})
	if err != nil {
		t.Fatalf("DetectEvent() error = %v", err)
	}

	if len(auditRepo.Entries) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(auditRepo.Entries))
	}

	generated := auditRepo.ByType(audit.EventAlertGenerated)
	detected := auditRepo.ByType(audit.EventSecurityDetected)
	if len(generated) != 1 || len(detected) != 1 {
		t.Fatalf("expected one entry of each type, got generated=%d detected=%d", len(generated), len(detected))
	}
	if generated[0].AlertID != a.ID || detected[0].AlertID != a.ID {
		t.Error("ledger entries do not reference the raised alert")
	}
	if detected[0].Details["event_type"] != "privilege_escalation" {
		t.Errorf("detected entry details = %v", detected[0].Details)
	}
}

func TestSecurityService_DetectEventActor(t *testing.T) {
	tests := []struct {
		name      string
		actor     string
		wantActor string
	}{
		{"explicit actor recorded", "auditor@example.com", "auditor@example.com"},
		{"absent actor defaults to system", "", "system"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, resourceRepo, _, auditRepo := newSecurityFixture(map[string]bool{"email": true})
			seedResource(resourceRepo, "res-1", true)

			_, err := svc.DetectEvent(context.Background(), SecurityEvent{
				EventType:  "policy_violation",
				ResourceID: "res-1",
				Actor:      tt.actor,
			})
			if err != nil {
				t.Fatalf("DetectEvent() error = %v", err)
			}

			detected := auditRepo.ByType(audit.EventSecurityDetected)
			if len(detected) != 1 {
				t.Fatalf("expected 1 security_event_detected entry, got %d", len(detected))
			}
			if detected[0].Actor != tt.wantActor {
				t.Errorf("actor = %q, want %q", detected[0].Actor, tt.wantActor)
			}
		})
	}
}

func TestSecurityService_InvalidEventTypeWritesNothing(t *testing.T) {
	svc, resourceRepo, alertRepo, auditRepo := newSecurityFixture(map[string]bool{"email": true})
	seedResource(resourceRepo, "res-1", true)

	_, err := svc.DetectEvent(context.Background(), SecurityEvent{
		EventType:  "cryptomining",
		ResourceID: "res-1",
	})
	if err == nil {
		t.Fatal("DetectEvent() accepted an unrecognized event type")
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidEventType {
		t.Fatalf("error = %v, want INVALID_EVENT_TYPE", err)
	}

	if len(alertRepo.Alerts) != 0 {
		t.Error("invalid event type must not create an alert")
	}
	if len(auditRepo.Entries) != 0 {
		t.Error("invalid event type must not touch the ledger")
	}
}

func TestSecurityService_UnknownResourceWritesNothing(t *testing.T) {
	svc, _, alertRepo, auditRepo := newSecurityFixture(map[string]bool{"email": true})

	_, err := svc.DetectEvent(context.Background(), SecurityEvent{
		EventType:  "unauthorized_access",
		ResourceID: "no-such-resource",
	})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("DetectEvent() error = %v, want NOT_FOUND", err)
	}

	if len(alertRepo.Alerts) != 0 {
		t.Error("unknown resource must not create an alert")
	}
	if len(auditRepo.Entries) != 0 {
		t.Error("unknown resource must not touch the ledger")
	}
}

func TestSecurityService_DeliveryFailureDoesNotFailDetection(t *testing.T) {
	svc, resourceRepo, _, auditRepo := newSecurityFixture(map[string]bool{"email": false, "slack": false})
	seedResource(resourceRepo, "res-9", true)

	a, err := svc.DetectEvent(context.Background(), SecurityEvent{
		EventType:  "unauthorized_access",
		ResourceID: "res-9",
	})
	if err != nil {
		t.Fatalf("DetectEvent() error = %v, want success despite failed fan-out", err)
	}
	if a == nil {
		t.Fatal("DetectEvent() returned no alert")
	}

	if len(auditRepo.ByType(audit.EventAlertGenerated)) != 1 {
		t.Error("missing alert_generated entry after failed fan-out")
	}
	if len(auditRepo.ByType(audit.EventSecurityDetected)) != 1 {
		t.Error("missing security_event_detected entry after failed fan-out")
	}
}

func TestSecurityService_SupportedEventTypes(t *testing.T) {
	svc, _, _, _ := newSecurityFixture(nil)

	types := svc.SupportedEventTypes()
	if len(types) != 5 {
		t.Fatalf("expected 5 event types, got %d", len(types))
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Errorf("event types not sorted: %v", types)
		}
	}
}
