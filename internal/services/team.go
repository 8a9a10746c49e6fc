package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) *TeamService {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.Team, error) {
	return s.teamRepo.ListTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id string) (*entities.Team, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error) {
	t := entities.Team{
		ID:        "team-" + uuid.NewString(),
		Name:      payload.Name,
		Type:      entities.TeamType(payload.Type),
		MemberIDs: payload.MemberIDs,
	}
	if t.MemberIDs == nil {
		t.MemberIDs = []string{}
	}

	if err := s.teamRepo.CreateTeam(ctx, t); err != nil {
		s.logger.Error("creating team failed", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.Team, error) {
	existing, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if payload.Name != "" {
		updated.Name = payload.Name
	}
	if payload.Type != "" {
		updated.Type = entities.TeamType(payload.Type)
	}
	if payload.MemberIDs != nil {
		updated.MemberIDs = *payload.MemberIDs
	}

	if err := s.teamRepo.UpdateTeam(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}
