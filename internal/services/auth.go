package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/apperrors"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates by email. Seeded demo accounts carry no password hash
// and accept any password; accounts with a hash get a bcrypt check. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, err
	}

	if user.PasswordHash != "" && !utils.CheckPassword(user.PasswordHash, payload.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (s *AuthService) RefreshToken(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.LoginResponseDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindUser(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, refreshToken, err := s.jwtService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         *user,
	}, nil
}
