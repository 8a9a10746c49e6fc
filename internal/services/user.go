package services

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *UserService) FindUser(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.FindUser(ctx, id)
}
