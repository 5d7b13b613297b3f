package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/incident"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
)

type IncidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) incident.Repository {
	return &IncidentRepository{db: db}
}

const incidentColumns = `id, title, description, status, severity, created_by, created_at, updated_at, closed_at, archived_at`

func (r *IncidentRepository) Create(ctx context.Context, in *incident.Incident) error {
	now := time.Now()
	in.CreatedAt = now
	in.UpdatedAt = now

	query := `
		INSERT INTO incidents (` + incidentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		in.ID, in.Title, in.Description, in.Status, in.Severity, in.CreatedBy,
		formatTime(now), formatTime(now), formatNullTime(in.ClosedAt), formatNullTime(in.ArchivedAt),
	)
	if err != nil {
		return errors.DatabaseError("Failed to create incident", err)
	}

	return nil
}

func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*incident.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = ?`

	in, err := scanIncident(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Incident")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get incident", err)
	}
	return in, nil
}

func (r *IncidentRepository) Update(ctx context.Context, in *incident.Incident) error {
	in.UpdatedAt = time.Now()

	query := `
		UPDATE incidents SET title = ?, description = ?, status = ?, severity = ?, updated_at = ?, closed_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		in.Title, in.Description, in.Status, in.Severity,
		formatTime(in.UpdatedAt), formatNullTime(in.ClosedAt), in.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update incident", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Incident")
	}

	return nil
}

// Archive is conditional so a repeated archive call does not move the
// archived_at stamp.
func (r *IncidentRepository) Archive(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE incidents SET archived_at = ?, updated_at = ?
		WHERE id = ? AND archived_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, formatTime(at), formatTime(at), id)
	if err != nil {
		return false, errors.DatabaseError("Failed to archive incident", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, errors.DatabaseError("Failed to get affected rows", err)
	}

	return rows > 0, nil
}

func (r *IncidentRepository) List(ctx context.Context, skip, limit int) ([]*incident.Incident, error) {
	query := `
		SELECT ` + incidentColumns + ` FROM incidents
		WHERE archived_at IS NULL
		ORDER BY created_at DESC LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list incidents", err)
	}
	defer rows.Close()

	var incidents []*incident.Incident
	for rows.Next() {
		in, err := scanIncident(rows)
		if err != nil {
			return nil, errors.DatabaseError("Failed to scan incident", err)
		}
		incidents = append(incidents, in)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate incidents", err)
	}

	return incidents, nil
}

func scanIncident(row rowScanner) (*incident.Incident, error) {
	var in incident.Incident
	var createdBy sql.NullString
	var createdAt, updatedAt string
	var closedAt, archivedAt sql.NullString

	err := row.Scan(
		&in.ID, &in.Title, &in.Description, &in.Status, &in.Severity,
		&createdBy, &createdAt, &updatedAt, &closedAt, &archivedAt,
	)
	if err != nil {
		return nil, err
	}

	in.CreatedBy = createdBy.String
	in.CreatedAt = parseTime(createdAt)
	in.UpdatedAt = parseTime(updatedAt)
	in.ClosedAt = parseNullTime(closedAt)
	in.ArchivedAt = parseNullTime(archivedAt)

	return &in, nil
}
