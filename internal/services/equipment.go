package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.ListEquipment(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	e := entities.Equipment{
		ID:                "equip-" + uuid.NewString(),
		Name:              payload.Name,
		SerialNumber:      payload.SerialNumber,
		Department:        payload.Department,
		Location:          payload.Location,
		Category:          payload.Category,
		MaintenanceTeamID: payload.MaintenanceTeamID,
		PurchaseDate:      payload.PurchaseDate,
		WarrantyExpiry:    payload.WarrantyExpiry,
		Status:            entities.EquipmentOperational,
		Health:            payload.Health,
	}
	if payload.Description != "" {
		e.Description = null.StringFrom(payload.Description)
	}

	if err := s.equipmentRepo.CreateEquipment(ctx, e); err != nil {
		s.logger.Error("creating equipment failed", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	existing, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if payload.Name != "" {
		updated.Name = payload.Name
	}
	if payload.SerialNumber != "" {
		updated.SerialNumber = payload.SerialNumber
	}
	if payload.Department != "" {
		updated.Department = payload.Department
	}
	if payload.Location != "" {
		updated.Location = payload.Location
	}
	if payload.Category != "" {
		updated.Category = payload.Category
	}
	if payload.MaintenanceTeamID != "" {
		updated.MaintenanceTeamID = payload.MaintenanceTeamID
	}
	if payload.PurchaseDate != nil {
		updated.PurchaseDate = *payload.PurchaseDate
	}
	if payload.WarrantyExpiry != nil {
		updated.WarrantyExpiry = *payload.WarrantyExpiry
	}
	if payload.Status != "" {
		updated.Status = entities.EquipmentStatus(payload.Status)
	}
	if payload.Health != nil {
		updated.Health = *payload.Health
	}
	if payload.IsScrapped != nil {
		updated.IsScrapped = *payload.IsScrapped
		if updated.IsScrapped {
			updated.Status = entities.EquipmentScrapped
		}
	}
	if payload.Description != nil {
		updated.Description = null.StringFrom(*payload.Description)
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}
