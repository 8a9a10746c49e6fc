package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/repositories/memory"
)

func TestGetDashboardFromSeed(t *testing.T) {
	store := memory.NewStore(memory.Seed(time.Now()))
	svc := NewDashboardService(store, zap.NewNop())

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	m := dashboard.Metrics
	assert.Equal(t, 6, m.TotalEquipment)
	// Seed: req-1, req-3, req-6 New; req-2, req-4, req-7 In Progress.
	assert.Equal(t, 6, m.OpenRequests)
	// req-2 is open and one day past due.
	assert.Equal(t, 1, m.OverdueRequests)
	// equip-1 (health 25) and equip-6 (health 15); equip-5 is scrapped.
	assert.Equal(t, 2, m.CriticalEquipment)
	// 5 of the 6 technicians hold open requests (user-10's is Repaired).
	assert.Equal(t, 83, m.TechnicianLoadPercent)

	assert.Len(t, dashboard.RecentRequests, 5)
	assert.Equal(t, 3, m.RequestsByStatus["New"])
	assert.Equal(t, 3, m.RequestsByStatus["In Progress"])
	assert.Equal(t, 4, m.RequestsByTeam["team-1"])
}
