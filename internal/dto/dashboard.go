package dto

import (
	"gearguard/internal/board"
	"gearguard/internal/entities"
)

type DashboardDTO struct {
	Metrics        board.Metrics                 `json:"metrics"`
	RecentRequests []entities.MaintenanceRequest `json:"recentRequests"`
}
