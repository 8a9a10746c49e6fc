package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/ai"
	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

// AssistantService gathers the context the AI suggestion needs: the
// equipment, the team roster and each technician's open workload.
type AssistantService struct {
	store     *repositories.Store
	assistant *ai.Assistant
	logger    *zap.Logger
}

func NewAssistantService(store *repositories.Store, assistant *ai.Assistant, logger *zap.Logger) *AssistantService {
	return &AssistantService{store: store, assistant: assistant, logger: logger}
}

func (s *AssistantService) SuggestAssignment(ctx context.Context, payload dto.SuggestAssignmentDTO) (*dto.SuggestAssignmentResponseDTO, error) {
	equipment, err := s.store.Equipment.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	teams, err := s.store.Teams.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.Users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := s.store.Requests.ListRequests(ctx, board.Filters{})
	if err != nil {
		return nil, err
	}

	technicians := make([]entities.User, 0, len(users))
	for _, u := range users {
		if u.Role == entities.RoleTechnician {
			technicians = append(technicians, u)
		}
	}
	openCounts := make(map[string]int)
	for _, r := range requests {
		if r.Open() {
			openCounts[r.AssignedTechnicianID]++
		}
	}

	suggestion := s.assistant.SuggestAssignment(ctx, ai.SuggestInput{
		Subject:     payload.Subject,
		Equipment:   *equipment,
		Teams:       teams,
		Technicians: technicians,
		OpenCounts:  openCounts,
	})
	return &dto.SuggestAssignmentResponseDTO{
		TeamID:       suggestion.TeamID,
		TechnicianID: suggestion.TechnicianID,
		Reason:       suggestion.Reason,
	}, nil
}
