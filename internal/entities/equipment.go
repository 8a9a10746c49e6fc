package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type EquipmentStatus string

const (
	EquipmentOperational      EquipmentStatus = "Operational"
	EquipmentUnderMaintenance EquipmentStatus = "Under Maintenance"
	EquipmentScrapped         EquipmentStatus = "Scrapped"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentOperational, EquipmentUnderMaintenance, EquipmentScrapped:
		return true
	}
	return false
}

// CriticalHealthThreshold is the health gauge value below which equipment is
// reported as critical on the dashboard.
const CriticalHealthThreshold = 30

type Equipment struct {
	ID                   string          `json:"id" db:"id"`
	Name                 string          `json:"name" db:"name"`
	SerialNumber         string          `json:"serialNumber" db:"serial_number"`
	Department           string          `json:"department" db:"department"`
	Location             string          `json:"location" db:"location"`
	Category             string          `json:"category" db:"category"`
	MaintenanceTeamID    string          `json:"maintenanceTeamId" db:"maintenance_team_id"`
	AssignedEmployeeID   null.String     `json:"assignedEmployeeId,omitempty" db:"assigned_employee_id"`
	AssignedTechnicianID null.String     `json:"assignedTechnicianId,omitempty" db:"assigned_technician_id"`
	PurchaseDate         time.Time       `json:"purchaseDate" db:"purchase_date"`
	WarrantyExpiry       time.Time       `json:"warrantyExpiry" db:"warranty_expiry"`
	AssignedDate         null.Time       `json:"assignedDate,omitempty" db:"assigned_date"`
	IsScrapped           bool            `json:"isScrapped" db:"is_scrapped"`
	Status               EquipmentStatus `json:"status" db:"status"`
	Health               int             `json:"health" db:"health"`
	Description          null.String     `json:"description,omitempty" db:"description"`
}

// Critical reports whether the asset needs attention: low health and not
// already written off.
func (e Equipment) Critical() bool {
	return e.Health < CriticalHealthThreshold && e.Status != EquipmentScrapped
}
