// Package memory implements the repository interfaces over in-process
// slices. It backs the development mode where the seeded mock dataset is
// used interchangeably with the real database, and it is what the service
// tests run against.
package memory

import (
	"context"
	"strings"
	"sync"

	"gearguard/internal/board"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/apperrors"
)

// Dataset is the initial content of a memory store.
type Dataset struct {
	Users       []entities.User
	Teams       []entities.Team
	Equipment   []entities.Equipment
	Requests    []entities.MaintenanceRequest
	WorkCenters []entities.WorkCenter
}

// NewStore builds a Store over the given dataset. Each repository copies its
// slice, so the caller's dataset is never aliased.
func NewStore(data Dataset) *repositories.Store {
	return &repositories.Store{
		Requests:    newRequestRepository(data.Requests),
		Equipment:   newEquipmentRepository(data.Equipment),
		Teams:       newTeamRepository(data.Teams),
		Users:       newUserRepository(data.Users),
		WorkCenters: newWorkCenterRepository(data.WorkCenters),
	}
}

type requestRepository struct {
	mu sync.RWMutex
	// Ordered most-recent-first, matching the postgres created_at DESC order.
	requests []entities.MaintenanceRequest
}

func newRequestRepository(seed []entities.MaintenanceRequest) *requestRepository {
	r := &requestRepository{requests: make([]entities.MaintenanceRequest, len(seed))}
	copy(r.requests, seed)
	return r
}

func (r *requestRepository) ListRequests(_ context.Context, f board.Filters) ([]entities.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return f.Apply(r.requests), nil
}

func (r *requestRepository) FindRequest(_ context.Context, id string) (*entities.MaintenanceRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, req := range r.requests {
		if req.ID == id {
			found := req
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *requestRepository) CreateRequest(_ context.Context, req entities.MaintenanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append([]entities.MaintenanceRequest{req}, r.requests...)
	return nil
}

func (r *requestRepository) UpdateRequest(_ context.Context, req entities.MaintenanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = req
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *requestRepository) UpdateRequestStatus(_ context.Context, id string, status entities.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *requestRepository) DeleteRequest(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type equipmentRepository struct {
	mu    sync.RWMutex
	items []entities.Equipment
}

func newEquipmentRepository(seed []entities.Equipment) *equipmentRepository {
	r := &equipmentRepository{items: make([]entities.Equipment, len(seed))}
	copy(r.items, seed)
	return r
}

func (r *equipmentRepository) ListEquipment(_ context.Context) ([]entities.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Equipment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *equipmentRepository) FindEquipment(_ context.Context, id string) (*entities.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.items {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *equipmentRepository) CreateEquipment(_ context.Context, e entities.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	return nil
}

func (r *equipmentRepository) UpdateEquipment(_ context.Context, e entities.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == e.ID {
			r.items[i] = e
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *equipmentRepository) DeleteEquipment(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type teamRepository struct {
	mu    sync.RWMutex
	teams []entities.Team
}

func newTeamRepository(seed []entities.Team) *teamRepository {
	r := &teamRepository{teams: make([]entities.Team, len(seed))}
	copy(r.teams, seed)
	return r
}

func (r *teamRepository) ListTeams(_ context.Context) ([]entities.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Team, len(r.teams))
	copy(out, r.teams)
	return out, nil
}

func (r *teamRepository) FindTeam(_ context.Context, id string) (*entities.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.teams {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *teamRepository) CreateTeam(_ context.Context, t entities.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = append(r.teams, t)
	return nil
}

func (r *teamRepository) UpdateTeam(_ context.Context, t entities.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.teams {
		if r.teams[i].ID == t.ID {
			r.teams[i] = t
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *teamRepository) DeleteTeam(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.teams {
		if r.teams[i].ID == id {
			r.teams = append(r.teams[:i], r.teams[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type userRepository struct {
	mu    sync.RWMutex
	users []entities.User
}

func newUserRepository(seed []entities.User) *userRepository {
	r := &userRepository{users: make([]entities.User, len(seed))}
	copy(r.users, seed)
	return r
}

func (r *userRepository) ListUsers(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *userRepository) FindUser(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type workCenterRepository struct {
	mu      sync.RWMutex
	centers []entities.WorkCenter
}

func newWorkCenterRepository(seed []entities.WorkCenter) *workCenterRepository {
	r := &workCenterRepository{centers: make([]entities.WorkCenter, len(seed))}
	copy(r.centers, seed)
	return r
}

func (r *workCenterRepository) ListWorkCenters(_ context.Context) ([]entities.WorkCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.WorkCenter, len(r.centers))
	copy(out, r.centers)
	return out, nil
}

func (r *workCenterRepository) FindWorkCenter(_ context.Context, id string) (*entities.WorkCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, wc := range r.centers {
		if wc.ID == id {
			found := wc
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *workCenterRepository) CreateWorkCenter(_ context.Context, wc entities.WorkCenter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.centers = append(r.centers, wc)
	return nil
}

func (r *workCenterRepository) UpdateWorkCenter(_ context.Context, wc entities.WorkCenter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.centers {
		if r.centers[i].ID == wc.ID {
			r.centers[i] = wc
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *workCenterRepository) DeleteWorkCenter(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.centers {
		if r.centers[i].ID == id {
			r.centers = append(r.centers[:i], r.centers[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
