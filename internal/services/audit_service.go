package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/metrics"
)

// AuditService implements audit.Service over the append-only ledger
type AuditService struct {
	repo   audit.Repository
	logger *logger.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo audit.Repository, log *logger.Logger) audit.Service {
	return &AuditService{
		repo:   repo,
		logger: log,
	}
}

// Record appends an entry to the ledger. A failed append is returned
// as-is so callers can treat it as fatal for the surrounding operation.
func (s *AuditService) Record(ctx context.Context, e *audit.Entry) (*audit.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.EventTime.IsZero() {
		e.EventTime = time.Now()
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.ErrorWithErr(err, "Failed to write audit entry")
		return nil, err
	}

	metrics.RecordAuditEntry(e.EventType)
	return e, nil
}

// GetByID retrieves a single entry by ID
func (s *AuditService) GetByID(ctx context.Context, id string) (*audit.Entry, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves entries matching the filter, newest first
func (s *AuditService) List(ctx context.Context, f audit.Filter, skip, limit int) ([]*audit.Entry, error) {
	return s.repo.List(ctx, f, skip, limit)
}
