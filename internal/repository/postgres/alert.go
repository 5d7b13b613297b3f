package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
)

type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) alert.Repository {
	return &AlertRepository{db: db}
}

const alertColumns = `id, resource_id, incident_id, type, status, title, description, severity, triggered_at, resolved_at, details`

func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	if a.TriggeredAt.IsZero() {
		a.TriggeredAt = time.Now()
	}

	details, err := marshalJSON(a.Details)
	if err != nil {
		return errors.DatabaseError("Failed to encode alert details", err)
	}

	query := `
		INSERT INTO alerts (` + alertColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.ID, nullString(a.ResourceID), nullString(a.IncidentID), a.Type, a.Status,
		a.Title, a.Description, a.Severity, formatTime(a.TriggeredAt),
		formatNullTime(a.ResolvedAt), details,
	)
	if err != nil {
		return errors.DatabaseError("Failed to create alert", err)
	}

	return nil
}

func (r *AlertRepository) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = ?`

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Alert")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get alert", err)
	}
	return a, nil
}

// MarkResolved performs the resolve transition as a single conditional
// update so concurrent resolvers cannot both win.
func (r *AlertRepository) MarkResolved(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE alerts SET status = ?, resolved_at = ?
		WHERE id = ? AND status != ?
	`

	result, err := r.db.ExecContext(ctx, query,
		alert.StatusResolved, formatTime(at), id, alert.StatusResolved,
	)
	if err != nil {
		return false, errors.DatabaseError("Failed to resolve alert", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, errors.DatabaseError("Failed to get affected rows", err)
	}

	return rows > 0, nil
}

func (r *AlertRepository) MarkAcknowledged(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE alerts SET status = ?
		WHERE id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		alert.StatusAcknowledged, id, alert.StatusActive,
	)
	if err != nil {
		return false, errors.DatabaseError("Failed to acknowledge alert", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, errors.DatabaseError("Failed to get affected rows", err)
	}

	return rows > 0, nil
}

func (r *AlertRepository) List(ctx context.Context, skip, limit int) ([]*alert.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY triggered_at DESC LIMIT ? OFFSET ?`
	return r.list(ctx, query, limit, skip)
}

func (r *AlertRepository) ListByIncident(ctx context.Context, incidentID string) ([]*alert.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE incident_id = ? ORDER BY triggered_at DESC`
	return r.list(ctx, query, incidentID)
}

func (r *AlertRepository) list(ctx context.Context, query string, args ...interface{}) ([]*alert.Alert, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list alerts", err)
	}
	defer rows.Close()

	var alerts []*alert.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan alert", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate alerts", err)
	}

	return alerts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAlert(row rowScanner) (*alert.Alert, error) {
	var a alert.Alert
	var resourceID, incidentID, resolvedAt, details sql.NullString
	var triggeredAt string

	err := row.Scan(
		&a.ID, &resourceID, &incidentID, &a.Type, &a.Status,
		&a.Title, &a.Description, &a.Severity, &triggeredAt, &resolvedAt, &details,
	)
	if err != nil {
		return nil, err
	}

	a.ResourceID = resourceID.String
	a.IncidentID = incidentID.String
	a.TriggeredAt = parseTime(triggeredAt)
	a.ResolvedAt = parseNullTime(resolvedAt)
	if a.Details, err = unmarshalJSON(details); err != nil {
		return nil, err
	}

	return &a, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
