package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/testutil"
)

func newStoredAlert(id string) *alert.Alert {
	return &alert.Alert{
		ID:          id,
		Type:        alert.TypeResource,
		Status:      alert.StatusActive,
		Title:       "CPU breach on web-1",
		Description: "CPUUtilization above threshold",
		Severity:    alert.SeverityWarning,
		TriggeredAt: time.Now().UTC(),
		Details:     map[string]interface{}{"metric": "CPUUtilization"},
	}
}

func TestAlertRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := newStoredAlert("alert-1")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, "alert-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != a.Title {
		t.Errorf("GetByID() Title = %q, want %q", got.Title, a.Title)
	}
	if got.Status != alert.StatusActive {
		t.Errorf("GetByID() Status = %q, want %q", got.Status, alert.StatusActive)
	}
	if got.Details["metric"] != "CPUUtilization" {
		t.Errorf("GetByID() Details = %v, want metric entry", got.Details)
	}
	if got.ResolvedAt != nil {
		t.Errorf("GetByID() ResolvedAt = %v, want nil", got.ResolvedAt)
	}

	if _, err := repo.GetByID(ctx, "missing"); err == nil {
		t.Error("GetByID() expected error for missing alert")
	}
}

func TestAlertRepository_MarkResolved(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := newStoredAlert("alert-1")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	at := time.Now().UTC()
	won, err := repo.MarkResolved(ctx, "alert-1", at)
	if err != nil {
		t.Fatalf("MarkResolved() error = %v", err)
	}
	if !won {
		t.Error("MarkResolved() = false, want true for first transition")
	}

	// Second attempt loses the conditional update
	won, err = repo.MarkResolved(ctx, "alert-1", time.Now().UTC())
	if err != nil {
		t.Fatalf("MarkResolved() second call error = %v", err)
	}
	if won {
		t.Error("MarkResolved() = true on already resolved alert")
	}

	got, err := repo.GetByID(ctx, "alert-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != alert.StatusResolved {
		t.Errorf("Status = %q, want %q", got.Status, alert.StatusResolved)
	}
	if got.ResolvedAt == nil {
		t.Fatal("ResolvedAt = nil after resolve")
	}
	if got.ResolvedAt.Sub(at).Abs() > time.Second {
		t.Errorf("ResolvedAt = %v, want %v", got.ResolvedAt, at)
	}
}

func TestAlertRepository_MarkAcknowledged(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAlertRepository(db)
	ctx := context.Background()

	a := newStoredAlert("alert-1")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	won, err := repo.MarkAcknowledged(ctx, "alert-1")
	if err != nil {
		t.Fatalf("MarkAcknowledged() error = %v", err)
	}
	if !won {
		t.Error("MarkAcknowledged() = false, want true for active alert")
	}

	// Only active alerts can be acknowledged
	won, err = repo.MarkAcknowledged(ctx, "alert-1")
	if err != nil {
		t.Fatalf("MarkAcknowledged() second call error = %v", err)
	}
	if won {
		t.Error("MarkAcknowledged() = true on already acknowledged alert")
	}

	if _, err := repo.MarkResolved(ctx, "alert-1", time.Now().UTC()); err != nil {
		t.Fatalf("MarkResolved() error = %v", err)
	}
	won, err = repo.MarkAcknowledged(ctx, "alert-1")
	if err != nil {
		t.Fatalf("MarkAcknowledged() after resolve error = %v", err)
	}
	if won {
		t.Error("MarkAcknowledged() = true on resolved alert")
	}
}

func TestAlertRepository_List(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewAlertRepository(db)
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"alert-1", "alert-2", "alert-3"} {
		a := newStoredAlert(id)
		a.TriggeredAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	alerts, err := repo.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(alerts) != 3 {
		t.Fatalf("List() returned %d alerts, want 3", len(alerts))
	}
	if alerts[0].ID != "alert-3" {
		t.Errorf("List() first ID = %q, want newest alert-3", alerts[0].ID)
	}

	page, err := repo.List(ctx, 1, 1)
	if err != nil {
		t.Fatalf("List() with pagination error = %v", err)
	}
	if len(page) != 1 || page[0].ID != "alert-2" {
		t.Errorf("List(skip=1, limit=1) = %v, want [alert-2]", page)
	}
}
