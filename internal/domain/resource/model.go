package resource

import "time"

// Resource represents a provisioned cloud resource (VM, DB, storage, etc.)
type Resource struct {
	ID                string                 `json:"id"`
	ProductID         string                 `json:"product_id"`
	Name              string                 `json:"name"`
	CloudID           string                 `json:"cloud_id"`
	CloudProvider     string                 `json:"cloud_provider"`
	ResourceType      string                 `json:"resource_type"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	MonitoringEnabled bool                   `json:"monitoring_enabled"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// Cloud providers
const (
	ProviderAWS   = "aws"
	ProviderGCP   = "gcp"
	ProviderAzure = "azure"
)

// Resource types
const (
	TypeEC2         = "ec2"
	TypeS3          = "s3"
	TypeRDS         = "rds"
	TypeVM          = "vm"
	TypeSQLDatabase = "sqldatabase"
)
