package dto

import (
	"time"

	"gearguard/internal/entities"
)

type CreateRequestDTO struct {
	Subject              string     `json:"subject" validate:"required,max=255"`
	EquipmentID          string     `json:"equipmentId" validate:"required"`
	AssignedTechnicianID string     `json:"assignedTechnicianId" validate:"required"`
	TeamID               string     `json:"teamId" validate:"required"`
	DueDate              time.Time  `json:"dueDate" validate:"required"`
	RequestType          string     `json:"requestType" validate:"omitempty,request_type"`
	Priority             string     `json:"priority" validate:"omitempty,priority"`
	ScheduledDate        *time.Time `json:"scheduledDate"`
	Duration             *float64   `json:"duration" validate:"omitempty,gt=0"`
	Notes                string     `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateRequestDTO struct {
	Subject              string     `json:"subject" validate:"omitempty,max=255"`
	EquipmentID          string     `json:"equipmentId"`
	AssignedTechnicianID string     `json:"assignedTechnicianId"`
	TeamID               string     `json:"teamId"`
	DueDate              *time.Time `json:"dueDate"`
	Status               string     `json:"status" validate:"omitempty,request_status"`
	RequestType          string     `json:"requestType" validate:"omitempty,request_type"`
	Priority             string     `json:"priority" validate:"omitempty,priority"`
	ScheduledDate        *time.Time `json:"scheduledDate"`
	Duration             *float64   `json:"duration" validate:"omitempty,gt=0"`
	Notes                *string    `json:"notes" validate:"omitempty,max=2000"`
}

type RequestListDTO struct {
	Requests []entities.MaintenanceRequest `json:"requests"`
	Total    int                           `json:"total"`
}
