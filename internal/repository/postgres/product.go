package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/product"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) product.Repository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO products (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, formatTime(now), formatTime(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Product with this name already exists")
		}
		return errors.DatabaseError("Failed to create product", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM products WHERE id = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM products WHERE name = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, name))
}

func (r *ProductRepository) scanOne(row *sql.Row) (*product.Product, error) {
	var p product.Product
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.Name, &p.Description, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Product")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get product", err)
	}

	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	p.UpdatedAt = time.Now()

	query := `
		UPDATE products SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, formatTime(p.UpdatedAt), p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("Product with this name already exists")
		}
		return errors.DatabaseError("Failed to update product", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Product")
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("Failed to delete product", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Product")
	}

	return nil
}

func (r *ProductRepository) List(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM products ORDER BY created_at DESC LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list products", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &createdAt, &updatedAt); err != nil {
			return nil, errors.DatabaseError("Failed to scan product", err)
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("Failed to iterate products", err)
	}

	return products, nil
}
