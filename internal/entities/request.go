package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// RequestStatus is a kanban column. Transitions between statuses are
// unrestricted; only the permission layer gates who may move a card.
type RequestStatus string

const (
	StatusNew        RequestStatus = "New"
	StatusInProgress RequestStatus = "In Progress"
	StatusRepaired   RequestStatus = "Repaired"
	StatusScrap      RequestStatus = "Scrap"
)

// StatusColumns is the board's column order.
var StatusColumns = []RequestStatus{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return true
	}
	return false
}

// Closed reports whether the status counts as finished for overdue and
// open-request purposes.
func (s RequestStatus) Closed() bool {
	return s == StatusRepaired || s == StatusScrap
}

type RequestType string

const (
	TypeCorrective RequestType = "Corrective"
	TypePreventive RequestType = "Preventive"
)

func (t RequestType) Valid() bool {
	return t == TypeCorrective || t == TypePreventive
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// MaintenanceRequest is a work order against a piece of equipment.
type MaintenanceRequest struct {
	ID                   string        `json:"id" db:"id"`
	Subject              string        `json:"subject" db:"subject"`
	EquipmentID          string        `json:"equipmentId" db:"equipment_id"`
	AssignedTechnicianID string        `json:"assignedTechnicianId" db:"assigned_technician_id"`
	TeamID               string        `json:"teamId" db:"team_id"`
	RequesterID          string        `json:"requesterId" db:"requester_id"`
	DueDate              time.Time     `json:"dueDate" db:"due_date"`
	Status               RequestStatus `json:"status" db:"status"`
	RequestType          RequestType   `json:"requestType" db:"request_type"`
	Priority             Priority      `json:"priority" db:"priority"`
	ScheduledDate        null.Time     `json:"scheduledDate,omitempty" db:"scheduled_date"`
	Duration             null.Float64  `json:"duration,omitempty" db:"duration"`
	Notes                null.String   `json:"notes,omitempty" db:"notes"`
	CreatedAt            time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time     `json:"updatedAt" db:"updated_at"`
}

// Open reports whether the request still counts toward the open workload.
func (r MaintenanceRequest) Open() bool {
	return !r.Status.Closed()
}

// Overdue reports whether the request is open and past its due date.
func (r MaintenanceRequest) Overdue(now time.Time) bool {
	return r.Open() && r.DueDate.Before(now)
}
