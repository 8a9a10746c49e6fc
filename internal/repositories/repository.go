package repositories

import (
	"context"

	"gearguard/internal/board"
	"gearguard/internal/entities"
)

type RequestRepositoryInterface interface {
	// ListRequests returns requests ordered most-recent-first, optionally
	// narrowed by the board filter set.
	ListRequests(ctx context.Context, f board.Filters) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, r entities.MaintenanceRequest) error
	UpdateRequest(ctx context.Context, r entities.MaintenanceRequest) error
	UpdateRequestStatus(ctx context.Context, id string, status entities.RequestStatus) error
	DeleteRequest(ctx context.Context, id string) error
}

type EquipmentRepositoryInterface interface {
	ListEquipment(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, e entities.Equipment) error
	UpdateEquipment(ctx context.Context, e entities.Equipment) error
	DeleteEquipment(ctx context.Context, id string) error
}

type TeamRepositoryInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, t entities.Team) error
	UpdateTeam(ctx context.Context, t entities.Team) error
	DeleteTeam(ctx context.Context, id string) error
}

type UserRepositoryInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

type WorkCenterRepositoryInterface interface {
	ListWorkCenters(ctx context.Context) ([]entities.WorkCenter, error)
	FindWorkCenter(ctx context.Context, id string) (*entities.WorkCenter, error)
	CreateWorkCenter(ctx context.Context, wc entities.WorkCenter) error
	UpdateWorkCenter(ctx context.Context, wc entities.WorkCenter) error
	DeleteWorkCenter(ctx context.Context, id string) error
}

// Store bundles one repository per entity. The postgres and memory packages
// both produce a Store, which is what makes the mock dataset and the real
// database interchangeable.
type Store struct {
	Requests    RequestRepositoryInterface
	Equipment   EquipmentRepositoryInterface
	Teams       TeamRepositoryInterface
	Users       UserRepositoryInterface
	WorkCenters WorkCenterRepositoryInterface
}
