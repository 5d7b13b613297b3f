package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/domain/alert"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/audit"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/incident"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/product"
	"github.com/pratik-mahalle/cloudsentry/internal/domain/resource"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/errors"
)

// MockProductRepository is a mock implementation of product.Repository
type MockProductRepository struct {
	Products    map[string]*product.Product
	CreateError error
	GetError    error
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		Products: make(map[string]*product.Product),
	}
}

func (m *MockProductRepository) Create(ctx context.Context, p *product.Product) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, existing := range m.Products {
		if existing.Name == p.Name {
			return errors.Conflict("Product with this name already exists")
		}
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.Products[p.ID] = p
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	p, ok := m.Products[id]
	if !ok {
		return nil, errors.NotFound("Product")
	}
	return p, nil
}

func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, p := range m.Products {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product")
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if _, ok := m.Products[p.ID]; !ok {
		return errors.NotFound("Product")
	}
	p.UpdatedAt = time.Now()
	m.Products[p.ID] = p
	return nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Products[id]; !ok {
		return errors.NotFound("Product")
	}
	delete(m.Products, id)
	return nil
}

func (m *MockProductRepository) List(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	var all []*product.Product
	for _, p := range m.Products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, skip, limit), nil
}

// MockResourceRepository is a mock implementation of resource.Repository
type MockResourceRepository struct {
	Resources   map[string]*resource.Resource
	CreateError error
	GetError    error
	ListError   error
}

func NewMockResourceRepository() *MockResourceRepository {
	return &MockResourceRepository{
		Resources: make(map[string]*resource.Resource),
	}
}

func (m *MockResourceRepository) Create(ctx context.Context, r *resource.Resource) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.Resources[r.ID] = r
	return nil
}

func (m *MockResourceRepository) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	r, ok := m.Resources[id]
	if !ok {
		return nil, errors.NotFound("Resource")
	}
	return r, nil
}

func (m *MockResourceRepository) GetByCloudID(ctx context.Context, cloudID, cloudProvider string) (*resource.Resource, error) {
	for _, r := range m.Resources {
		if r.CloudID == cloudID && r.CloudProvider == cloudProvider {
			return r, nil
		}
	}
	return nil, errors.NotFound("Resource")
}

func (m *MockResourceRepository) Update(ctx context.Context, r *resource.Resource) error {
	if _, ok := m.Resources[r.ID]; !ok {
		return errors.NotFound("Resource")
	}
	r.UpdatedAt = time.Now()
	m.Resources[r.ID] = r
	return nil
}

func (m *MockResourceRepository) List(ctx context.Context, skip, limit int) ([]*resource.Resource, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var all []*resource.Resource
	for _, r := range m.Resources {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, skip, limit), nil
}

// MockAlertRepository is a mock implementation of alert.Repository
type MockAlertRepository struct {
	Alerts      map[string]*alert.Alert
	CreateError error
	GetError    error
}

func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{
		Alerts: make(map[string]*alert.Alert),
	}
}

func (m *MockAlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if a.TriggeredAt.IsZero() {
		a.TriggeredAt = time.Now()
	}
	m.Alerts[a.ID] = a
	return nil
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id string) (*alert.Alert, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	a, ok := m.Alerts[id]
	if !ok {
		return nil, errors.NotFound("Alert")
	}
	copied := *a
	return &copied, nil
}

func (m *MockAlertRepository) MarkResolved(ctx context.Context, id string, at time.Time) (bool, error) {
	a, ok := m.Alerts[id]
	if !ok {
		return false, errors.NotFound("Alert")
	}
	if a.Status == alert.StatusResolved {
		return false, nil
	}
	a.Status = alert.StatusResolved
	a.ResolvedAt = &at
	return true, nil
}

func (m *MockAlertRepository) MarkAcknowledged(ctx context.Context, id string) (bool, error) {
	a, ok := m.Alerts[id]
	if !ok {
		return false, errors.NotFound("Alert")
	}
	if a.Status != alert.StatusActive {
		return false, nil
	}
	a.Status = alert.StatusAcknowledged
	return true, nil
}

func (m *MockAlertRepository) List(ctx context.Context, skip, limit int) ([]*alert.Alert, error) {
	var all []*alert.Alert
	for _, a := range m.Alerts {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].TriggeredAt.After(all[j].TriggeredAt) })
	return paginate(all, skip, limit), nil
}

func (m *MockAlertRepository) ListByIncident(ctx context.Context, incidentID string) ([]*alert.Alert, error) {
	var out []*alert.Alert
	for _, a := range m.Alerts {
		if a.IncidentID == incidentID {
			out = append(out, a)
		}
	}
	return out, nil
}

// MockIncidentRepository is a mock implementation of incident.Repository
type MockIncidentRepository struct {
	Incidents   map[string]*incident.Incident
	CreateError error
}

func NewMockIncidentRepository() *MockIncidentRepository {
	return &MockIncidentRepository{
		Incidents: make(map[string]*incident.Incident),
	}
}

func (m *MockIncidentRepository) Create(ctx context.Context, in *incident.Incident) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	now := time.Now()
	in.CreatedAt = now
	in.UpdatedAt = now
	m.Incidents[in.ID] = in
	return nil
}

func (m *MockIncidentRepository) GetByID(ctx context.Context, id string) (*incident.Incident, error) {
	in, ok := m.Incidents[id]
	if !ok {
		return nil, errors.NotFound("Incident")
	}
	copied := *in
	return &copied, nil
}

func (m *MockIncidentRepository) Update(ctx context.Context, in *incident.Incident) error {
	if _, ok := m.Incidents[in.ID]; !ok {
		return errors.NotFound("Incident")
	}
	in.UpdatedAt = time.Now()
	m.Incidents[in.ID] = in
	return nil
}

func (m *MockIncidentRepository) Archive(ctx context.Context, id string, at time.Time) (bool, error) {
	in, ok := m.Incidents[id]
	if !ok {
		return false, errors.NotFound("Incident")
	}
	if in.ArchivedAt != nil {
		return false, nil
	}
	in.ArchivedAt = &at
	in.UpdatedAt = at
	return true, nil
}

func (m *MockIncidentRepository) List(ctx context.Context, skip, limit int) ([]*incident.Incident, error) {
	var all []*incident.Incident
	for _, in := range m.Incidents {
		if in.ArchivedAt != nil {
			continue
		}
		all = append(all, in)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, skip, limit), nil
}

// MockAuditRepository is a mock implementation of audit.Repository.
// Entries accumulate in insertion order for assertions.
type MockAuditRepository struct {
	Entries     []*audit.Entry
	CreateError error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, e *audit.Entry) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if e.EventTime.IsZero() {
		e.EventTime = time.Now()
	}
	m.Entries = append(m.Entries, e)
	return nil
}

func (m *MockAuditRepository) GetByID(ctx context.Context, id string) (*audit.Entry, error) {
	for _, e := range m.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errors.NotFound("Audit entry")
}

func (m *MockAuditRepository) List(ctx context.Context, f audit.Filter, skip, limit int) ([]*audit.Entry, error) {
	var matched []*audit.Entry
	for _, e := range m.Entries {
		if f.IncidentID != "" && e.IncidentID != f.IncidentID {
			continue
		}
		if f.AlertID != "" && e.AlertID != f.AlertID {
			continue
		}
		if f.EventType != "" && e.EventType != f.EventType {
			continue
		}
		matched = append(matched, e)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].EventTime.After(matched[j].EventTime) })
	return paginate(matched, skip, limit), nil
}

// ByType returns the stored entries with the given event type, in
// insertion order
func (m *MockAuditRepository) ByType(eventType string) []*audit.Entry {
	var out []*audit.Entry
	for _, e := range m.Entries {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// MockNotifier is a configurable notification fan-out
type MockNotifier struct {
	Outcomes map[string]bool
	Calls    int
	Subjects []string
}

func NewMockNotifier(outcomes map[string]bool) *MockNotifier {
	return &MockNotifier{Outcomes: outcomes}
}

func (m *MockNotifier) Dispatch(ctx context.Context, subject, body string) map[string]bool {
	m.Calls++
	m.Subjects = append(m.Subjects, subject)
	out := make(map[string]bool, len(m.Outcomes))
	for k, v := range m.Outcomes {
		out[k] = v
	}
	return out
}

// MockMetricSource is a mock implementation of monitoring.MetricSource
type MockMetricSource struct {
	ProviderName string
	Values       map[string]*float64
	FetchError   error
	Calls        int
}

func (m *MockMetricSource) Provider() string {
	return m.ProviderName
}

func (m *MockMetricSource) FetchMetrics(ctx context.Context, r *resource.Resource, metricNames []string) (map[string]*float64, error) {
	m.Calls++
	if m.FetchError != nil {
		return nil, m.FetchError
	}
	out := make(map[string]*float64, len(metricNames))
	for _, name := range metricNames {
		if v, ok := m.Values[name]; ok {
			out[name] = v
		} else {
			out[name] = nil
		}
	}
	return out, nil
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return nil
	}
	end := skip + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// Float returns a pointer to v
func Float(v float64) *float64 { return &v }
