package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

const recentRequestCount = 5

type DashboardService struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewDashboardService(store *repositories.Store, logger *zap.Logger) *DashboardService {
	return &DashboardService{store: store, logger: logger}
}

// GetDashboard fetches requests, equipment and users concurrently and
// derives the metrics from the joined result.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		wg        sync.WaitGroup
		requests  []entities.MaintenanceRequest
		equipment []entities.Equipment
		users     []entities.User

		reqErr, equipErr, userErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		requests, reqErr = s.store.Requests.ListRequests(ctx, board.Filters{})
	}()
	go func() {
		defer wg.Done()
		equipment, equipErr = s.store.Equipment.ListEquipment(ctx)
	}()
	go func() {
		defer wg.Done()
		users, userErr = s.store.Users.ListUsers(ctx)
	}()
	wg.Wait()

	for _, err := range []error{reqErr, equipErr, userErr} {
		if err != nil {
			s.logger.Error("dashboard fetch failed", zap.Error(err))
			return nil, err
		}
	}

	return &dto.DashboardDTO{
		Metrics:        board.ComputeMetrics(requests, equipment, users, time.Now().UTC()),
		RecentRequests: board.RecentRequests(requests, recentRequestCount),
	}, nil
}
