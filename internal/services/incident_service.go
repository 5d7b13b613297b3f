package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/incident"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
)

// IncidentService implements incident.Service
type IncidentService struct {
	repo   incident.Repository
	audit  audit.Service
	logger *logger.Logger
}

// NewIncidentService creates a new incident service
func NewIncidentService(repo incident.Repository, auditSvc audit.Service, log *logger.Logger) incident.Service {
	return &IncidentService{
		repo:   repo,
		audit:  auditSvc,
		logger: log,
	}
}

var validIncidentStatuses = map[string]bool{
	incident.StatusOpen:       true,
	incident.StatusInProgress: true,
	incident.StatusResolved:   true,
	incident.StatusClosed:     true,
}

// Create opens a new incident
func (s *IncidentService) Create(ctx context.Context, in *incident.Incident) (*incident.Incident, error) {
	if in.Title == "" {
		return nil, errors.BadRequest("Incident title is required")
	}
	if in.Status == "" {
		in.Status = incident.StatusOpen
	}
	if !validIncidentStatuses[in.Status] {
		return nil, errors.BadRequest("Invalid incident status: " + in.Status)
	}
	if in.Severity == "" {
		in.Severity = alert.SeverityWarning
	}

	in.ID = uuid.NewString()

	if err := s.repo.Create(ctx, in); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create incident")
		return nil, err
	}

	if _, err := s.audit.Record(ctx, &audit.Entry{
		IncidentID: in.ID,
		EventType:  audit.EventIncidentCreated,
		Actor:      in.CreatedBy,
		Details: map[string]interface{}{
			"title":    in.Title,
			"severity": in.Severity,
		},
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"incident_id": in.ID,
		"severity":    in.Severity,
	}).Info("Incident created")

	return in, nil
}

// GetByID retrieves an incident by ID
func (s *IncidentService) GetByID(ctx context.Context, id string) (*incident.Incident, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus moves an incident through its workflow
func (s *IncidentService) UpdateStatus(ctx context.Context, id, status string) (*incident.Incident, error) {
	if !validIncidentStatuses[status] {
		return nil, errors.BadRequest("Invalid incident status: " + status)
	}

	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status == status {
		return in, nil
	}

	in.Status = status
	if status == incident.StatusClosed && in.ClosedAt == nil {
		now := time.Now()
		in.ClosedAt = &now
	}

	if err := s.repo.Update(ctx, in); err != nil {
		s.logger.ErrorWithErr(err, "Failed to update incident status")
		return nil, err
	}

	return in, nil
}

// Close closes an incident
func (s *IncidentService) Close(ctx context.Context, id string) (*incident.Incident, error) {
	return s.UpdateStatus(ctx, id, incident.StatusClosed)
}

// Archive hides an incident from listings without touching its alerts
// or ledger entries. Repeated archive calls are no-ops.
func (s *IncidentService) Archive(ctx context.Context, id string) error {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if in.Archived() {
		return nil
	}

	archived, err := s.repo.Archive(ctx, id, time.Now())
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to archive incident")
		return err
	}
	if !archived {
		// Lost a race with another archiver; the outcome is the same.
		return nil
	}

	if _, err := s.audit.Record(ctx, &audit.Entry{
		IncidentID: id,
		EventType:  audit.EventIncidentArchived,
	}); err != nil {
		return err
	}

	s.logger.With("incident_id", id).Info("Incident archived")
	return nil
}

// List retrieves non-archived incidents with pagination
func (s *IncidentService) List(ctx context.Context, skip, limit int) ([]*incident.Incident, error) {
	return s.repo.List(ctx, skip, limit)
}
