package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
)

type ResourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) resource.Repository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	metadata, err := marshalJSON(res.Metadata)
	if err != nil {
		return errors.DatabaseError("Failed to encode resource metadata", err)
	}

	query := `
		INSERT INTO resources (id, product_id, name, cloud_id, cloud_provider, resource_type, metadata, monitoring_enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		res.ID, res.ProductID, res.Name, res.CloudID, res.CloudProvider,
		res.ResourceType, metadata, res.MonitoringEnabled, formatTime(now), formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Resource with this cloud ID already exists")
		}
		return errors.DatabaseError("Failed to create resource", err)
	}

	return nil
}

const resourceColumns = `id, product_id, name, cloud_id, cloud_provider, resource_type, metadata, monitoring_enabled, created_at, updated_at`

func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *ResourceRepository) GetByCloudID(ctx context.Context, cloudID, cloudProvider string) (*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE cloud_id = ? AND cloud_provider = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, cloudID, cloudProvider))
}

func (r *ResourceRepository) scanOne(row *sql.Row) (*resource.Resource, error) {
	var res resource.Resource
	var metadata sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&res.ID, &res.ProductID, &res.Name, &res.CloudID, &res.CloudProvider,
		&res.ResourceType, &metadata, &res.MonitoringEnabled, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Resource")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get resource", err)
	}

	if res.Metadata, err = unmarshalJSON(metadata); err != nil {
		return nil, errors.DatabaseError("Failed to decode resource metadata", err)
	}
	res.CreatedAt = parseTime(createdAt)
	res.UpdatedAt = parseTime(updatedAt)
	return &res, nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	res.UpdatedAt = time.Now()

	metadata, err := marshalJSON(res.Metadata)
	if err != nil {
		return errors.DatabaseError("Failed to encode resource metadata", err)
	}

	query := `
		UPDATE resources SET name = ?, metadata = ?, monitoring_enabled = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		res.Name, metadata, res.MonitoringEnabled, formatTime(res.UpdatedAt), res.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update resource", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Resource")
	}

	return nil
}

func (r *ResourceRepository) List(ctx context.Context, skip, limit int) ([]*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list resources", err)
	}
	defer rows.Close()

	var resources []*resource.Resource
	for rows.Next() {
		var res resource.Resource
		var metadata sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(
			&res.ID, &res.ProductID, &res.Name, &res.CloudID, &res.CloudProvider,
			&res.ResourceType, &metadata, &res.MonitoringEnabled, &createdAt, &updatedAt,
		); err != nil {
			return nil, errors.DatabaseError("Failed to scan resource", err)
		}
		if res.Metadata, err = unmarshalJSON(metadata); err != nil {
			return nil, errors.DatabaseError("Failed to decode resource metadata", err)
		}
		res.CreatedAt = parseTime(createdAt)
		res.UpdatedAt = parseTime(updatedAt)
		resources = append(resources, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate resources", err)
	}

	return resources, nil
}
