package services

import (
	"context"
	"testing"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func TestAuditService_RecordAssignsIDAndTime(t *testing.T) {
	repo := testutil.NewMockAuditRepository()
	svc := NewAuditService(repo, testLog())

	e, err := svc.Record(context.Background(), &audit.Entry{
		AlertID:   "alert-1",
		EventType: audit.EventAlertGenerated,
	})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if e.ID == "" {
		t.Error("Record() left ID empty")
	}
	if e.EventTime.IsZero() {
		t.Error("Record() left EventTime zero")
	}
}

func TestAuditService_ListFiltersAndOrders(t *testing.T) {
	repo := testutil.NewMockAuditRepository()
	svc := NewAuditService(repo, testLog())
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seed := []*audit.Entry{
		{AlertID: "a1", EventType: audit.EventAlertGenerated, EventTime: base},
		{AlertID: "a1", EventType: audit.EventAlertResolved, EventTime: base.Add(10 * time.Minute)},
		{AlertID: "a2", IncidentID: "i1", EventType: audit.EventAlertGenerated, EventTime: base.Add(20 * time.Minute)},
		{IncidentID: "i1", EventType: audit.EventIncidentCreated, EventTime: base.Add(30 * time.Minute)},
	}
	for _, e := range seed {
		if _, err := svc.Record(ctx, e); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	t.Run("filter by alert", func(t *testing.T) {
		got, err := svc.List(ctx, audit.Filter{AlertID: "a1"}, 0, 100)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 entries for a1, got %d", len(got))
		}
		// Newest first.
		if got[0].EventType != audit.EventAlertResolved {
			t.Errorf("first entry = %s, want alert_resolved", got[0].EventType)
		}
	})

	t.Run("filter by incident", func(t *testing.T) {
		got, err := svc.List(ctx, audit.Filter{IncidentID: "i1"}, 0, 100)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 entries for i1, got %d", len(got))
		}
	})

	t.Run("filter by event type", func(t *testing.T) {
		got, err := svc.List(ctx, audit.Filter{EventType: audit.EventAlertGenerated}, 0, 100)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 alert_generated entries, got %d", len(got))
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.List(ctx, audit.Filter{}, 1, 2)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(page) != 2 {
			t.Fatalf("expected page of 2, got %d", len(page))
		}
		if page[0].EventType != audit.EventAlertGenerated || page[0].AlertID != "a2" {
			t.Errorf("unexpected page start: %+v", page[0])
		}
	})
}
