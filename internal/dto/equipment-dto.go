package dto

import "time"

type CreateEquipmentDTO struct {
	Name              string    `json:"name" validate:"required,max=255"`
	SerialNumber      string    `json:"serialNumber" validate:"required,max=100"`
	Department        string    `json:"department" validate:"required,max=100"`
	Location          string    `json:"location" validate:"omitempty,max=255"`
	Category          string    `json:"category" validate:"omitempty,max=100"`
	MaintenanceTeamID string    `json:"maintenanceTeamId" validate:"required"`
	PurchaseDate      time.Time `json:"purchaseDate" validate:"required"`
	WarrantyExpiry    time.Time `json:"warrantyExpiry" validate:"required"`
	Health            int       `json:"health" validate:"gte=0,lte=100"`
	Description       string    `json:"description" validate:"omitempty,max=2000"`
}

type UpdateEquipmentDTO struct {
	Name              string     `json:"name" validate:"omitempty,max=255"`
	SerialNumber      string     `json:"serialNumber" validate:"omitempty,max=100"`
	Department        string     `json:"department" validate:"omitempty,max=100"`
	Location          string     `json:"location" validate:"omitempty,max=255"`
	Category          string     `json:"category" validate:"omitempty,max=100"`
	MaintenanceTeamID string     `json:"maintenanceTeamId"`
	PurchaseDate      *time.Time `json:"purchaseDate"`
	WarrantyExpiry    *time.Time `json:"warrantyExpiry"`
	Status            string     `json:"status" validate:"omitempty,equipment_status"`
	Health            *int       `json:"health" validate:"omitempty,gte=0,lte=100"`
	IsScrapped        *bool      `json:"isScrapped"`
	Description       *string    `json:"description" validate:"omitempty,max=2000"`
}
