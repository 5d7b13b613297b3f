package incident

import "time"

// Incident represents a tracked operational incident that alerts can be
// linked to. Incidents are never hard-deleted; archiving hides them from
// listings while keeping the audit references intact.
type Incident struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Severity    string     `json:"severity"`
	CreatedBy   string     `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
}

// Incident status values
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// Archived reports whether the incident has been archived
func (i *Incident) Archived() bool {
	return i.ArchivedAt != nil
}
