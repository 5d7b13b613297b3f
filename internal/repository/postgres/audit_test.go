package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func TestAuditRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAuditRepository(db)
	ctx := context.Background()

	e := &audit.Entry{
		ID:        "entry-1",
		AlertID:   "alert-1",
		EventType: audit.EventAlertGenerated,
		EventTime: time.Now().UTC(),
		Actor:     "system",
		Details:   map[string]interface{}{"email_sent": true},
	}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "entry-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.EventType != audit.EventAlertGenerated {
		t.Errorf("EventType = %q, want %q", got.EventType, audit.EventAlertGenerated)
	}
	if got.AlertID != "alert-1" {
		t.Errorf("AlertID = %q, want alert-1", got.AlertID)
	}
	if got.Details["email_sent"] != true {
		t.Errorf("Details = %v, want email_sent true", got.Details)
	}

	if _, err := repo.GetByID(ctx, "missing"); err == nil {
		t.Error("GetByID() expected error for missing entry")
	}
}

func TestAuditRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAuditRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	entries := []*audit.Entry{
		{ID: "e1", AlertID: "alert-1", EventType: audit.EventAlertGenerated, EventTime: base},
		{ID: "e2", AlertID: "alert-1", EventType: audit.EventAlertResolved, EventTime: base.Add(time.Minute)},
		{ID: "e3", IncidentID: "inc-1", EventType: audit.EventIncidentCreated, EventTime: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create(%s) error = %v", e.ID, err)
		}
	}

	tests := []struct {
		name    string
		filter  audit.Filter
		wantIDs []string
	}{
		{
			name:    "no filter returns newest first",
			filter:  audit.Filter{},
			wantIDs: []string{"e3", "e2", "e1"},
		},
		{
			name:    "filter by alert",
			filter:  audit.Filter{AlertID: "alert-1"},
			wantIDs: []string{"e2", "e1"},
		},
		{
			name:    "filter by incident",
			filter:  audit.Filter{IncidentID: "inc-1"},
			wantIDs: []string{"e3"},
		},
		{
			name:    "filter by event type",
			filter:  audit.Filter{EventType: audit.EventAlertResolved},
			wantIDs: []string{"e2"},
		},
		{
			name:    "no matches",
			filter:  audit.Filter{AlertID: "alert-9"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter, 0, 100)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("List() returned %d entries, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("List()[%d].ID = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestAuditRepository_ListPagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAuditRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"e1", "e2", "e3", "e4"} {
		e := &audit.Entry{
			ID:        id,
			EventType: audit.EventAlertGenerated,
			EventTime: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	got, err := repo.List(ctx, audit.Filter{}, 1, 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List(skip=1, limit=2) returned %d entries, want 2", len(got))
	}
	if got[0].ID != "e3" || got[1].ID != "e2" {
		t.Errorf("List(skip=1, limit=2) = [%s, %s], want [e3, e2]", got[0].ID, got[1].ID)
	}
}
