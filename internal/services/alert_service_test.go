package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	apperrors "github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func testLog() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

func newAlertFixture(outcomes map[string]bool) (alert.Service, *testutil.MockAlertRepository, *testutil.MockAuditRepository, *testutil.MockNotifier) {
	alertRepo := testutil.NewMockAlertRepository()
	auditRepo := testutil.NewMockAuditRepository()
	notifier := testutil.NewMockNotifier(outcomes)
	auditSvc := NewAuditService(auditRepo, testLog())
	svc := NewAlertService(alertRepo, auditSvc, notifier, testLog())
	return svc, alertRepo, auditRepo, notifier
}

func TestAlertService_Create(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(nil)

	tests := []struct {
		name    string
		alert   *alert.Alert
		wantErr bool
	}{
		{
			name: "create resource alert",
			alert: &alert.Alert{
				Type:     alert.TypeResource,
				Severity: alert.SeverityWarning,
				Title:    "CPU threshold breached",
			},
			wantErr: false,
		},
		{
			name: "create security alert",
			alert: &alert.Alert{
				Type:     alert.TypeSecurity,
				Severity: alert.SeverityCritical,
				Title:    "Unauthorized access detected",
			},
			wantErr: false,
		},
		{
			name: "missing title",
			alert: &alert.Alert{
				Type:     alert.TypeResource,
				Severity: alert.SeverityWarning,
			},
			wantErr: true,
		},
		{
			name: "invalid type",
			alert: &alert.Alert{
				Type:     "billing",
				Severity: alert.SeverityWarning,
				Title:    "Something",
			},
			wantErr: true,
		},
		{
			name: "invalid severity",
			alert: &alert.Alert{
				Type:     alert.TypeResource,
				Severity: "urgent",
				Title:    "Something",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := svc.Create(context.Background(), tt.alert)

			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if a.ID == "" {
				t.Error("Create() returned empty id")
			}
			if a.Status != alert.StatusActive {
				t.Errorf("Create() status = %s, want %s", a.Status, alert.StatusActive)
			}
		})
	}

	// Creation alone must leave the ledger untouched.
	if len(auditRepo.Entries) != 0 {
		t.Errorf("Create() wrote %d audit entries, want 0", len(auditRepo.Entries))
	}
}

func TestAlertService_DeliverAllChannelsSucceed(t *testing.T) {
	svc, _, auditRepo, notifier := newAlertFixture(map[string]bool{"email": true, "slack": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "CPU threshold breached",
	})

	sent, err := svc.Deliver(ctx, a.ID)
	if err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if !sent {
		t.Error("Deliver() reported no channel succeeded")
	}
	if notifier.Calls != 1 {
		t.Errorf("notifier called %d times, want 1", notifier.Calls)
	}

	generated := auditRepo.ByType(audit.EventAlertGenerated)
	if len(generated) != 1 {
		t.Fatalf("expected 1 alert_generated entry, got %d", len(generated))
	}
	e := generated[0]
	if e.AlertID != a.ID {
		t.Errorf("entry alert_id = %s, want %s", e.AlertID, a.ID)
	}
	if e.Details["email_sent"] != true || e.Details["slack_sent"] != true {
		t.Errorf("entry details = %v, want both channels sent", e.Details)
	}
}

func TestAlertService_DeliverPartialFailureStillSucceeds(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": false, "slack": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeSecurity,
		Severity: alert.SeverityCritical,
		Title:    "Policy violation",
	})

	sent, err := svc.Deliver(ctx, a.ID)
	if err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if !sent {
		t.Error("Deliver() should succeed when one channel accepts")
	}

	generated := auditRepo.ByType(audit.EventAlertGenerated)
	if len(generated) != 1 {
		t.Fatalf("expected 1 alert_generated entry, got %d", len(generated))
	}
	if generated[0].Details["email_sent"] != false {
		t.Error("expected email_sent=false in entry details")
	}
}

func TestAlertService_DeliverAllChannelsFail(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": false, "slack": false})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "Disk write threshold breached",
	})

	sent, err := svc.Deliver(ctx, a.ID)
	if sent {
		t.Error("Deliver() reported success with all channels down")
	}
	if !apperrors.IsDeliveryFailed(err) {
		t.Fatalf("Deliver() error = %v, want DELIVERY_FAILED", err)
	}

	// The attempt is still on the ledger, with both outcomes false.
	generated := auditRepo.ByType(audit.EventAlertGenerated)
	if len(generated) != 1 {
		t.Fatalf("expected 1 alert_generated entry, got %d", len(generated))
	}
	if generated[0].Details["email_sent"] != false || generated[0].Details["slack_sent"] != false {
		t.Errorf("entry details = %v, want both channels false", generated[0].Details)
	}
}

func TestAlertService_DeliverAuditWriteFailureIsFatal(t *testing.T) {
	alertRepo := testutil.NewMockAlertRepository()
	auditRepo := testutil.NewMockAuditRepository()
	auditRepo.CreateError = errors.New("disk full")
	notifier := testutil.NewMockNotifier(map[string]bool{"email": true})
	svc := NewAlertService(alertRepo, NewAuditService(auditRepo, testLog()), notifier, testLog())
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "Network threshold breached",
	})

	sent, err := svc.Deliver(ctx, a.ID)
	if err == nil {
		t.Fatal("Deliver() should fail when the ledger write fails")
	}
	if apperrors.IsDeliveryFailed(err) {
		t.Error("ledger write failure must not be reported as DELIVERY_FAILED")
	}
	if sent {
		t.Error("Deliver() must not report success without a durable entry")
	}
}

func TestAlertService_ResolveWritesOneEntry(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "CPU threshold breached",
	})

	resolved, err := svc.Resolve(ctx, a.ID, "ops@example.com")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Status != alert.StatusResolved {
		t.Errorf("status = %s, want resolved", resolved.Status)
	}
	if resolved.ResolvedAt == nil {
		t.Error("ResolvedAt not set")
	}

	entries := auditRepo.ByType(audit.EventAlertResolved)
	if len(entries) != 1 {
		t.Fatalf("expected 1 alert_resolved entry, got %d", len(entries))
	}
	if entries[0].Actor != "ops@example.com" {
		t.Errorf("actor = %s, want ops@example.com", entries[0].Actor)
	}
	if _, ok := entries[0].Details["resolved_at"]; !ok {
		t.Errorf("alert_resolved entry details = %v, want resolved_at key", entries[0].Details)
	}
}

func TestAlertService_ResolveDefaultsActorToSystem(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "CPU threshold breached",
	})

	if _, err := svc.Resolve(ctx, a.ID, ""); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	entries := auditRepo.ByType(audit.EventAlertResolved)
	if len(entries) != 1 {
		t.Fatalf("expected 1 alert_resolved entry, got %d", len(entries))
	}
	if entries[0].Actor != "system" {
		t.Errorf("actor = %q, want system when none supplied", entries[0].Actor)
	}
}

func TestAlertService_ResolveIsIdempotent(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "CPU threshold breached",
	})

	first, err := svc.Resolve(ctx, a.ID, "ops@example.com")
	if err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}

	second, err := svc.Resolve(ctx, a.ID, "someone-else@example.com")
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}

	if second.Status != alert.StatusResolved {
		t.Errorf("second resolve status = %s, want resolved", second.Status)
	}
	if !second.ResolvedAt.Equal(*first.ResolvedAt) {
		t.Error("second resolve moved the resolution timestamp")
	}

	entries := auditRepo.ByType(audit.EventAlertResolved)
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 alert_resolved entry after double resolve, got %d", len(entries))
	}
}

func TestAlertService_ResolveNotFound(t *testing.T) {
	svc, _, _, _ := newAlertFixture(nil)

	_, err := svc.Resolve(context.Background(), "no-such-alert", "ops")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Resolve() error = %v, want NOT_FOUND", err)
	}
}

func TestAlertService_Acknowledge(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "Memory threshold breached",
	})

	acked, err := svc.Acknowledge(ctx, a.ID, "ops@example.com")
	if err != nil {
		t.Fatalf("Acknowledge() error = %v", err)
	}
	if acked.Status != alert.StatusAcknowledged {
		t.Errorf("status = %s, want acknowledged", acked.Status)
	}

	// Second acknowledge is a no-op.
	again, err := svc.Acknowledge(ctx, a.ID, "ops@example.com")
	if err != nil {
		t.Fatalf("second Acknowledge() error = %v", err)
	}
	if again.Status != alert.StatusAcknowledged {
		t.Errorf("second acknowledge status = %s", again.Status)
	}

	entries := auditRepo.ByType(audit.EventAlertAcknowledged)
	if len(entries) != 1 {
		t.Fatalf("expected 1 alert_acknowledged entry, got %d", len(entries))
	}
}

func TestAlertService_AcknowledgeResolvedIsNoOp(t *testing.T) {
	svc, _, auditRepo, _ := newAlertFixture(map[string]bool{"email": true})
	ctx := context.Background()

	a, _ := svc.Create(ctx, &alert.Alert{
		Type:     alert.TypeResource,
		Severity: alert.SeverityWarning,
		Title:    "Memory threshold breached",
	})
	if _, err := svc.Resolve(ctx, a.ID, "ops"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	acked, err := svc.Acknowledge(ctx, a.ID, "ops")
	if err != nil {
		t.Fatalf("Acknowledge() on resolved alert error = %v", err)
	}
	if acked.Status != alert.StatusResolved {
		t.Errorf("resolved alert left terminal state: status = %s", acked.Status)
	}
	if len(auditRepo.ByType(audit.EventAlertAcknowledged)) != 0 {
		t.Error("acknowledging a resolved alert must not write an entry")
	}
}
