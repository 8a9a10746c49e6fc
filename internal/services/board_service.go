package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/ai"
	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/apperrors"
	"gearguard/pkg/monitoring"
	"gearguard/pkg/websocket"
)

// BoardService owns the in-memory kanban board. The card order inside a
// column lives only here; the database persists status changes and new
// requests, not positions.
type BoardService struct {
	store     *repositories.Store
	cache     repositories.CacheRepositoryInterface
	assistant *ai.Assistant
	hub       *websocket.Hub
	metrics   *monitoring.Metrics
	logger    *zap.Logger
	cacheTTL  time.Duration

	mu    sync.Mutex
	board *board.Board
}

func NewBoardService(
	store *repositories.Store,
	cache repositories.CacheRepositoryInterface,
	assistant *ai.Assistant,
	hub *websocket.Hub,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *BoardService {
	return &BoardService{
		store:     store,
		cache:     cache,
		assistant: assistant,
		hub:       hub,
		metrics:   metrics,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// ensureBoard loads the request collection once. Callers must hold s.mu.
func (s *BoardService) ensureBoard(ctx context.Context) error {
	if s.board != nil {
		return nil
	}
	requests, err := s.store.Requests.ListRequests(ctx, board.Filters{})
	if err != nil {
		return fmt.Errorf("loading board requests: %w", err)
	}
	s.board = board.New(requests)
	return nil
}

// Invalidate drops the cached board so the next read reloads from storage.
// Called after request mutations that bypass the board.
func (s *BoardService) Invalidate() {
	s.mu.Lock()
	s.board = nil
	s.mu.Unlock()
}

// GetBoard returns the four status lanes under the given filters.
func (s *BoardService) GetBoard(ctx context.Context, f board.Filters) ([]board.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureBoard(ctx); err != nil {
		return nil, err
	}
	return s.board.Columns(f), nil
}

// MoveCard applies a drag-and-drop move for the given user. The permission
// verdict comes from the assistant (cached per user and team); an allowed
// move mutates the board optimistically and reverts if the status change
// cannot be persisted.
func (s *BoardService) MoveCard(ctx context.Context, userID string, payload dto.MoveCardDTO, f board.Filters) (*board.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureBoard(ctx); err != nil {
		return nil, err
	}

	request, ok := s.board.Find(payload.RequestID)
	if !ok {
		return nil, apperrors.NewHttpError(http.StatusNotFound, "request not found", apperrors.ErrNotFound, nil)
	}

	verdict, err := s.movePermission(ctx, userID, request.TeamID)
	if err != nil {
		return nil, err
	}
	if !verdict.Allowed {
		s.observeMove(payload.DestinationState, "denied")
		if s.hub != nil {
			// Denials go to the acting user only; the board itself is unchanged.
			if err := s.hub.SendMessageToUser(userID, websocket.EventMoveDenied, verdict); err != nil {
				s.logger.Warn("pushing move denial failed", zap.Error(err))
			}
		}
		return nil, apperrors.NewHttpError(http.StatusForbidden, verdict.Reason, apperrors.ErrForbidden, nil)
	}

	snapshot := s.board.Snapshot()
	result, err := s.board.MoveCard(
		payload.RequestID, entities.RequestStatus(payload.DestinationState), payload.DestinationIndex, f)
	if err != nil {
		s.observeMove(payload.DestinationState, "rejected")
		return nil, mapBoardError(err)
	}

	if result.StatusChanged {
		if err := s.store.Requests.UpdateRequestStatus(ctx, result.RequestID, result.To); err != nil {
			s.board.Restore(snapshot)
			s.observeMove(payload.DestinationState, "reverted")
			s.logger.Error("persisting status change failed, board reverted",
				zap.String("requestID", result.RequestID), zap.Error(err))
			return nil, fmt.Errorf("persisting status change: %w", err)
		}
	}

	s.observeMove(payload.DestinationState, "applied")
	if s.hub != nil {
		s.hub.Broadcast(websocket.EventCardMoved, result)
	}
	return &result, nil
}

// movePermission resolves the assistant verdict, consulting the cache first.
// Verdicts depend only on the user and the request's team, so they cache
// well.
func (s *BoardService) movePermission(ctx context.Context, userID, teamID string) (ai.MoveVerdict, error) {
	cacheKey := fmt.Sprintf("board:move:%s:%s", userID, teamID)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var verdict ai.MoveVerdict
		if err := json.Unmarshal([]byte(cached), &verdict); err == nil {
			return verdict, nil
		}
	}

	user, err := s.store.Users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ai.MoveVerdict{}, apperrors.ErrUnauthorized
		}
		return ai.MoveVerdict{}, err
	}

	isMember := false
	team, err := s.store.Teams.FindTeam(ctx, teamID)
	if err == nil {
		isMember = team.HasMember(userID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return ai.MoveVerdict{}, err
	}

	verdict := s.assistant.CheckMovePermission(ctx, ai.MoveCheckInput{
		UserID:       userID,
		Role:         user.Role,
		TeamID:       teamID,
		IsTeamMember: isMember,
	})

	if raw, err := json.Marshal(verdict); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(raw), s.cacheTTL); err != nil {
			s.logger.Warn("caching move verdict failed", zap.Error(err))
		}
	}
	return verdict, nil
}

// CreateRequest runs the create form flow: board-level validation and
// defaulting, optimistic head insert, then persistence with rollback.
func (s *BoardService) CreateRequest(ctx context.Context, requesterID string, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureBoard(ctx); err != nil {
		return nil, err
	}

	draft := board.Draft{
		Subject:              payload.Subject,
		EquipmentID:          payload.EquipmentID,
		AssignedTechnicianID: payload.AssignedTechnicianID,
		TeamID:               payload.TeamID,
		RequesterID:          requesterID,
		DueDate:              payload.DueDate,
		RequestType:          entities.RequestType(payload.RequestType),
		Priority:             entities.Priority(payload.Priority),
	}
	if payload.ScheduledDate != nil {
		draft.ScheduledDate = null.TimeFrom(*payload.ScheduledDate)
	}
	if payload.Duration != nil {
		draft.Duration = null.Float64From(*payload.Duration)
	}
	if payload.Notes != "" {
		draft.Notes = null.StringFrom(payload.Notes)
	}

	created, err := s.board.CreateRequest(draft, time.Now().UTC())
	if err != nil {
		var vErr *board.ValidationError
		if errors.As(err, &vErr) {
			details := map[string]interface{}{"missing": vErr.Missing}
			return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, vErr.Error(), apperrors.ErrBadRequest, details)
		}
		return nil, err
	}

	if err := s.store.Requests.CreateRequest(ctx, created); err != nil {
		s.board.Remove(created.ID)
		s.logger.Error("persisting new request failed, insert reverted",
			zap.String("requestID", created.ID), zap.Error(err))
		return nil, fmt.Errorf("persisting request: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(websocket.EventRequestCreated, created)
	}
	return &created, nil
}

// NotifyRequestUpdated pushes a request update to connected clients and
// refreshes the board on the next read.
func (s *BoardService) NotifyRequestUpdated(r entities.MaintenanceRequest) {
	s.Invalidate()
	if s.hub != nil {
		s.hub.Broadcast(websocket.EventRequestUpdated, r)
	}
}

func (s *BoardService) observeMove(column string, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveCardMove(column, outcome)
	}
}

func mapBoardError(err error) error {
	switch {
	case errors.Is(err, board.ErrUnknownRequest):
		return apperrors.NewHttpError(http.StatusNotFound, err.Error(), apperrors.ErrNotFound, nil)
	case errors.Is(err, board.ErrNotInView):
		return apperrors.NewHttpError(http.StatusConflict, err.Error(), apperrors.ErrBadRequest, nil)
	case errors.Is(err, board.ErrInvalidColumn):
		return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, nil)
	}
	return err
}
