package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// NewTestDB creates an in-memory SQLite database for testing
func NewTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Create schema
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS resources (
		id VARCHAR(36) PRIMARY KEY,
		product_id VARCHAR(36) NOT NULL REFERENCES products(id),
		name VARCHAR(255) NOT NULL,
		cloud_id VARCHAR(255) NOT NULL,
		cloud_provider VARCHAR(50) NOT NULL,
		resource_type VARCHAR(50) NOT NULL,
		metadata TEXT,
		monitoring_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE (cloud_id, cloud_provider)
	);

	CREATE TABLE IF NOT EXISTS incidents (
		id VARCHAR(36) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'open',
		severity VARCHAR(20) NOT NULL DEFAULT 'warning',
		created_by VARCHAR(255),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		closed_at TEXT,
		archived_at TEXT
	);

	CREATE TABLE IF NOT EXISTS alerts (
		id VARCHAR(36) PRIMARY KEY,
		resource_id VARCHAR(36) REFERENCES resources(id),
		incident_id VARCHAR(36) REFERENCES incidents(id),
		type VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		severity VARCHAR(20) NOT NULL,
		triggered_at TEXT NOT NULL,
		resolved_at TEXT,
		details TEXT
	);

	CREATE TABLE IF NOT EXISTS audit_logs (
		id VARCHAR(36) PRIMARY KEY,
		incident_id VARCHAR(36) REFERENCES incidents(id),
		alert_id VARCHAR(36) REFERENCES alerts(id),
		event_type VARCHAR(50) NOT NULL,
		event_time TEXT NOT NULL,
		actor VARCHAR(255),
		details TEXT
	);
	`

	_, err = db.Exec(schema)
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return db
}

// CleanupDB closes the test database
func CleanupDB(db *sql.DB) {
	if db != nil {
		db.Close()
	}
}
