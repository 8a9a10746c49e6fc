package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"gearguard/internal/entities"
)

// Draft is a partially filled maintenance request coming from the create
// form.
type Draft struct {
	Subject              string
	EquipmentID          string
	AssignedTechnicianID string
	TeamID               string
	RequesterID          string
	DueDate              time.Time
	RequestType          entities.RequestType
	Priority             entities.Priority
	ScheduledDate        null.Time
	Duration             null.Float64
	Notes                null.String
}

// ValidationError lists the required fields a draft is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Validate checks the draft for the fields the create form requires. Field
// names use the JSON keys the client knows.
func (d Draft) Validate() error {
	var missing []string
	if d.Subject == "" {
		missing = append(missing, "subject")
	}
	if d.EquipmentID == "" {
		missing = append(missing, "equipmentId")
	}
	if d.DueDate.IsZero() {
		missing = append(missing, "dueDate")
	}
	if d.TeamID == "" {
		missing = append(missing, "teamId")
	}
	if d.AssignedTechnicianID == "" {
		missing = append(missing, "assignedTechnicianId")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// CreateRequest validates the draft, finalizes it with a fresh identifier
// and status New, and inserts it at the head of the collection
// (most-recent-first).
func (b *Board) CreateRequest(d Draft, now time.Time) (entities.MaintenanceRequest, error) {
	if err := d.Validate(); err != nil {
		return entities.MaintenanceRequest{}, err
	}

	requestType := d.RequestType
	if requestType == "" {
		requestType = entities.TypeCorrective
	}
	priority := d.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}

	r := entities.MaintenanceRequest{
		ID:                   newRequestID(),
		Subject:              d.Subject,
		EquipmentID:          d.EquipmentID,
		AssignedTechnicianID: d.AssignedTechnicianID,
		TeamID:               d.TeamID,
		RequesterID:          d.RequesterID,
		DueDate:              d.DueDate,
		Status:               entities.StatusNew,
		RequestType:          requestType,
		Priority:             priority,
		ScheduledDate:        d.ScheduledDate,
		Duration:             d.Duration,
		Notes:                d.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	b.insertHead(r)
	return r, nil
}

// Remove takes a request out of the collection. Used to revert an optimistic
// insert whose persistence failed.
func (b *Board) Remove(id string) bool {
	idx := b.indexOf(id)
	if idx < 0 {
		return false
	}
	b.requests = append(b.requests[:idx], b.requests[idx+1:]...)
	return true
}

func newRequestID() string {
	return "req-" + uuid.NewString()
}
