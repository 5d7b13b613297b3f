package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
)

// AuditRepository persists the append-only ledger. There are no update
// or delete statements in this file on purpose.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) audit.Repository {
	return &AuditRepository{db: db}
}

const auditColumns = `id, incident_id, alert_id, event_type, event_time, actor, details`

func (r *AuditRepository) Create(ctx context.Context, e *audit.Entry) error {
	if e.EventTime.IsZero() {
		e.EventTime = time.Now()
	}

	details, err := marshalJSON(e.Details)
	if err != nil {
		return errors.DatabaseError("Failed to encode audit details", err)
	}

	query := `
		INSERT INTO audit_logs (` + auditColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		e.ID, nullString(e.IncidentID), nullString(e.AlertID), e.EventType,
		formatTime(e.EventTime), nullString(e.Actor), details,
	)
	if err != nil {
		return errors.DatabaseError("Failed to write audit entry", err)
	}

	return nil
}

func (r *AuditRepository) GetByID(ctx context.Context, id string) (*audit.Entry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs WHERE id = ?`

	e, err := scanAuditEntry(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Audit entry")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get audit entry", err)
	}
	return e, nil
}

func (r *AuditRepository) List(ctx context.Context, f audit.Filter, skip, limit int) ([]*audit.Entry, error) {
	where := []string{"1 = 1"}
	args := []interface{}{}

	if f.IncidentID != "" {
		where = append(where, "incident_id = ?")
		args = append(args, f.IncidentID)
	}
	if f.AlertID != "" {
		where = append(where, "alert_id = ?")
		args = append(args, f.AlertID)
	}
	if f.EventType != "" {
		where = append(where, "event_type = ?")
		args = append(args, f.EventType)
	}

	query := fmt.Sprintf(`
		SELECT `+auditColumns+` FROM audit_logs
		WHERE %s ORDER BY event_time DESC LIMIT ? OFFSET ?
	`, strings.Join(where, " AND "))
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list audit entries", err)
	}
	defer rows.Close()

	var entries []*audit.Entry
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan audit entry", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate audit entries", err)
	}

	return entries, nil
}

func scanAuditEntry(row rowScanner) (*audit.Entry, error) {
	var e audit.Entry
	var incidentID, alertID, actor, details sql.NullString
	var eventTime string

	err := row.Scan(&e.ID, &incidentID, &alertID, &e.EventType, &eventTime, &actor, &details)
	if err != nil {
		return nil, err
	}

	e.IncidentID = incidentID.String
	e.AlertID = alertID.String
	e.Actor = actor.String
	e.EventTime = parseTime(eventTime)
	if e.Details, err = unmarshalJSON(details); err != nil {
		return nil, err
	}

	return &e, nil
}
