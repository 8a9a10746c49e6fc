package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type WorkCenterService struct {
	workCenterRepo repositories.WorkCenterRepositoryInterface
	logger         *zap.Logger
}

func NewWorkCenterService(workCenterRepo repositories.WorkCenterRepositoryInterface, logger *zap.Logger) *WorkCenterService {
	return &WorkCenterService{workCenterRepo: workCenterRepo, logger: logger}
}

func (s *WorkCenterService) GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error) {
	return s.workCenterRepo.ListWorkCenters(ctx)
}

func (s *WorkCenterService) FindWorkCenter(ctx context.Context, id string) (*entities.WorkCenter, error) {
	return s.workCenterRepo.FindWorkCenter(ctx, id)
}

func (s *WorkCenterService) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*entities.WorkCenter, error) {
	wc := entities.WorkCenter{
		ID:                       "wc-" + uuid.NewString(),
		Name:                     payload.Name,
		Description:              payload.Description,
		Department:               payload.Department,
		AlternativeWorkCenterIDs: payload.AlternativeWorkCenterIDs,
	}
	if wc.AlternativeWorkCenterIDs == nil {
		wc.AlternativeWorkCenterIDs = []string{}
	}
	if payload.Tag != "" {
		wc.Tag = null.StringFrom(payload.Tag)
	}
	if payload.CostPerHour != nil {
		wc.CostPerHour = decimal.NewNullDecimal(decimal.NewFromFloat(*payload.CostPerHour))
	}
	if payload.Capacity != nil {
		wc.Capacity = null.IntFrom(*payload.Capacity)
	}
	if payload.OEETarget != nil {
		wc.OEETarget = null.Float64From(*payload.OEETarget)
	}

	if err := s.workCenterRepo.CreateWorkCenter(ctx, wc); err != nil {
		s.logger.Error("creating work center failed", zap.Error(err))
		return nil, err
	}
	return &wc, nil
}

func (s *WorkCenterService) UpdateWorkCenter(ctx context.Context, id string, payload dto.UpdateWorkCenterDTO) (*entities.WorkCenter, error) {
	existing, err := s.workCenterRepo.FindWorkCenter(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if payload.Name != "" {
		updated.Name = payload.Name
	}
	if payload.Description != nil {
		updated.Description = *payload.Description
	}
	if payload.Department != "" {
		updated.Department = payload.Department
	}
	if payload.Tag != nil {
		updated.Tag = null.StringFrom(*payload.Tag)
	}
	if payload.AlternativeWorkCenterIDs != nil {
		updated.AlternativeWorkCenterIDs = *payload.AlternativeWorkCenterIDs
	}
	if payload.CostPerHour != nil {
		updated.CostPerHour = decimal.NewNullDecimal(decimal.NewFromFloat(*payload.CostPerHour))
	}
	if payload.Capacity != nil {
		updated.Capacity = null.IntFrom(*payload.Capacity)
	}
	if payload.OEETarget != nil {
		updated.OEETarget = null.Float64From(*payload.OEETarget)
	}

	if err := s.workCenterRepo.UpdateWorkCenter(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *WorkCenterService) DeleteWorkCenter(ctx context.Context, id string) error {
	return s.workCenterRepo.DeleteWorkCenter(ctx, id)
}
