package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/apperrors"
)

type RequestService struct {
	store    *repositories.Store
	boardSvc *BoardService
	logger   *zap.Logger
}

func NewRequestService(store *repositories.Store, boardSvc *BoardService, logger *zap.Logger) *RequestService {
	return &RequestService{store: store, boardSvc: boardSvc, logger: logger}
}

func (s *RequestService) GetRequests(ctx context.Context, f board.Filters) ([]entities.MaintenanceRequest, error) {
	return s.store.Requests.ListRequests(ctx, f)
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	return s.store.Requests.FindRequest(ctx, id)
}

// CreateRequest validates the technician-team pairing and delegates to the
// board flow so the new card lands at the head of the New column.
func (s *RequestService) CreateRequest(ctx context.Context, requesterID string, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	if err := s.checkTechnicianMembership(ctx, payload.TeamID, payload.AssignedTechnicianID); err != nil {
		return nil, err
	}
	return s.boardSvc.CreateRequest(ctx, requesterID, payload)
}

// UpdateRequest applies a partial edit from the request form. Status edits
// here go through the same persistence as board moves.
func (s *RequestService) UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	existing, err := s.store.Requests.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if payload.Subject != "" {
		updated.Subject = payload.Subject
	}
	if payload.EquipmentID != "" {
		updated.EquipmentID = payload.EquipmentID
	}
	if payload.AssignedTechnicianID != "" {
		updated.AssignedTechnicianID = payload.AssignedTechnicianID
	}
	if payload.TeamID != "" {
		updated.TeamID = payload.TeamID
	}
	if payload.DueDate != nil {
		updated.DueDate = *payload.DueDate
	}
	if payload.Status != "" {
		updated.Status = entities.RequestStatus(payload.Status)
	}
	if payload.RequestType != "" {
		updated.RequestType = entities.RequestType(payload.RequestType)
	}
	if payload.Priority != "" {
		updated.Priority = entities.Priority(payload.Priority)
	}
	if payload.ScheduledDate != nil {
		updated.ScheduledDate = null.TimeFrom(*payload.ScheduledDate)
	}
	if payload.Duration != nil {
		updated.Duration = null.Float64From(*payload.Duration)
	}
	if payload.Notes != nil {
		updated.Notes = null.StringFrom(*payload.Notes)
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.checkTechnicianMembership(ctx, updated.TeamID, updated.AssignedTechnicianID); err != nil {
		return nil, err
	}

	if err := s.store.Requests.UpdateRequest(ctx, updated); err != nil {
		return nil, err
	}
	s.boardSvc.NotifyRequestUpdated(updated)
	return &updated, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	if err := s.store.Requests.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.boardSvc.Invalidate()
	return nil
}

// checkTechnicianMembership enforces that the assigned technician belongs to
// the assigned team. Unknown teams surface as a validation error too.
func (s *RequestService) checkTechnicianMembership(ctx context.Context, teamID, technicianID string) error {
	if teamID == "" || technicianID == "" {
		return nil
	}
	team, err := s.store.Teams.FindTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewHttpError(http.StatusUnprocessableEntity,
				"assigned team does not exist", apperrors.ErrBadRequest, nil)
		}
		return err
	}
	if !team.HasMember(technicianID) {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity,
			"assigned technician is not a member of the assigned team", apperrors.ErrBadRequest, nil)
	}
	return nil
}
