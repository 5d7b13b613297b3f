package services

import (
	"context"
	"testing"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/incident"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func newIncidentFixture() (incident.Service, *testutil.MockIncidentRepository, *testutil.MockAuditRepository) {
	repo := testutil.NewMockIncidentRepository()
	auditRepo := testutil.NewMockAuditRepository()
	svc := NewIncidentService(repo, NewAuditService(auditRepo, testLog()), testLog())
	return svc, repo, auditRepo
}

func TestIncidentService_Create(t *testing.T) {
	svc, _, auditRepo := newIncidentFixture()

	in, err := svc.Create(context.Background(), &incident.Incident{
		Title:     "API latency degradation",
		CreatedBy: "oncall@example.com",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if in.Status != incident.StatusOpen {
		t.Errorf("status = %s, want open", in.Status)
	}

	entries := auditRepo.ByType(audit.EventIncidentCreated)
	if len(entries) != 1 {
		t.Fatalf("expected 1 incident_created entry, got %d", len(entries))
	}
	if entries[0].IncidentID != in.ID {
		t.Error("entry does not reference the incident")
	}
}

func TestIncidentService_CreateInvalidStatus(t *testing.T) {
	svc, _, _ := newIncidentFixture()

	_, err := svc.Create(context.Background(), &incident.Incident{
		Title:  "Bad status",
		Status: "escalated",
	})
	if err == nil {
		t.Fatal("Create() accepted an invalid status")
	}
}

func TestIncidentService_Close(t *testing.T) {
	svc, _, _ := newIncidentFixture()
	ctx := context.Background()

	in, _ := svc.Create(ctx, &incident.Incident{Title: "DB failover"})

	closed, err := svc.Close(ctx, in.ID)
	if err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if closed.Status != incident.StatusClosed {
		t.Errorf("status = %s, want closed", closed.Status)
	}
	if closed.ClosedAt == nil {
		t.Error("ClosedAt not set")
	}
}

func TestIncidentService_ArchiveHidesFromListing(t *testing.T) {
	svc, repo, auditRepo := newIncidentFixture()
	ctx := context.Background()

	in, _ := svc.Create(ctx, &incident.Incident{Title: "Old incident"})
	other, _ := svc.Create(ctx, &incident.Incident{Title: "Live incident"})

	if err := svc.Archive(ctx, in.ID); err != nil {
		t.Fatalf("Archive() error = %v", err)
	}

	listed, err := svc.List(ctx, 0, 100)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listed) != 1 || listed[0].ID != other.ID {
		t.Errorf("expected only the live incident in listing, got %d", len(listed))
	}

	// Archived rows remain readable; nothing was deleted.
	stored, err := svc.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID() after archive error = %v", err)
	}
	if !stored.Archived() {
		t.Error("archived incident missing archived_at")
	}
	if _, ok := repo.Incidents[in.ID]; !ok {
		t.Error("archive must not remove the row")
	}

	if len(auditRepo.ByType(audit.EventIncidentArchived)) != 1 {
		t.Error("expected 1 incident_archived entry")
	}
}

func TestIncidentService_ArchiveIsIdempotent(t *testing.T) {
	svc, _, auditRepo := newIncidentFixture()
	ctx := context.Background()

	in, _ := svc.Create(ctx, &incident.Incident{Title: "Flapping alerts"})

	if err := svc.Archive(ctx, in.ID); err != nil {
		t.Fatalf("first Archive() error = %v", err)
	}
	if err := svc.Archive(ctx, in.ID); err != nil {
		t.Fatalf("second Archive() error = %v", err)
	}

	if len(auditRepo.ByType(audit.EventIncidentArchived)) != 1 {
		t.Error("repeated archive must not write a second entry")
	}
}
