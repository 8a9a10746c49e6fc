package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gearguard/internal/entities"
)

func technician(id, teamID string) entities.User {
	u := entities.User{ID: id, Name: id, Role: entities.RoleTechnician}
	u.TeamID.SetValid(teamID)
	return u
}

func TestComputeMetrics_OpenAndOverdue(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	overdue := req("r1", entities.StatusNew)
	overdue.DueDate = now.AddDate(0, 0, -2)
	open := req("r2", entities.StatusInProgress)
	open.DueDate = now.AddDate(0, 0, 5)
	// Closed requests never count as overdue, no matter the due date.
	closed := req("r3", entities.StatusRepaired)
	closed.DueDate = now.AddDate(0, 0, -30)
	scrapped := req("r4", entities.StatusScrap)
	scrapped.DueDate = now.AddDate(0, 0, -30)

	m := ComputeMetrics(
		[]entities.MaintenanceRequest{overdue, open, closed, scrapped},
		nil, nil, now,
	)

	assert.Equal(t, 2, m.OpenRequests)
	assert.Equal(t, 1, m.OverdueRequests)
	assert.LessOrEqual(t, m.OverdueRequests, m.OpenRequests)
}

func TestComputeMetrics_CriticalEquipment(t *testing.T) {
	equipment := []entities.Equipment{
		{ID: "e1", Health: 25, Status: entities.EquipmentOperational},
		{ID: "e2", Health: 90, Status: entities.EquipmentOperational},
	}

	m := ComputeMetrics(nil, equipment, nil, time.Now())

	assert.Equal(t, 1, m.CriticalEquipment)
	assert.Equal(t, 2, m.TotalEquipment)
}

func TestComputeMetrics_ScrappedEquipmentNeverCritical(t *testing.T) {
	equipment := []entities.Equipment{
		{ID: "e1", Health: 0, Status: entities.EquipmentScrapped},
	}

	m := ComputeMetrics(nil, equipment, nil, time.Now())

	assert.Equal(t, 0, m.CriticalEquipment)
}

func TestComputeMetrics_TechnicianLoadZeroWithoutTechnicians(t *testing.T) {
	users := []entities.User{
		{ID: "u1", Role: entities.RoleAdmin},
		{ID: "u2", Role: entities.RoleEmployee},
	}
	r := req("r1", entities.StatusNew)
	r.AssignedTechnicianID = "u1"

	m := ComputeMetrics([]entities.MaintenanceRequest{r}, nil, users, time.Now())

	assert.Equal(t, 0, m.TechnicianLoadPercent)
}

func TestComputeMetrics_TechnicianLoad(t *testing.T) {
	users := []entities.User{
		technician("t1", "team-1"),
		technician("t2", "team-1"),
		technician("t3", "team-2"),
	}

	busy := req("r1", entities.StatusInProgress)
	busy.AssignedTechnicianID = "t1"
	alsoBusy := req("r2", entities.StatusNew)
	alsoBusy.AssignedTechnicianID = "t1" // same technician, counted once
	done := req("r3", entities.StatusRepaired)
	done.AssignedTechnicianID = "t2" // closed request does not occupy anyone

	m := ComputeMetrics([]entities.MaintenanceRequest{busy, alsoBusy, done}, nil, users, time.Now())

	// 1 of 3 technicians busy -> 33%.
	assert.Equal(t, 33, m.TechnicianLoadPercent)
}

func TestComputeMetrics_ByStatusAndTeam(t *testing.T) {
	r1 := req("r1", entities.StatusNew)
	r1.TeamID = "team-1"
	r2 := req("r2", entities.StatusNew)
	r2.TeamID = "team-2"
	r3 := req("r3", entities.StatusScrap)
	r3.TeamID = "team-1"

	m := ComputeMetrics([]entities.MaintenanceRequest{r1, r2, r3}, nil, nil, time.Now())

	assert.Equal(t, 2, m.RequestsByStatus[entities.StatusNew])
	assert.Equal(t, 1, m.RequestsByStatus[entities.StatusScrap])
	assert.Equal(t, 2, m.RequestsByTeam["team-1"])
	assert.Equal(t, 1, m.RequestsByTeam["team-2"])
}

func TestRecentRequests(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	r1 := req("r1", entities.StatusNew)
	r1.DueDate = now.AddDate(0, 0, 1)
	r2 := req("r2", entities.StatusNew)
	r2.DueDate = now.AddDate(0, 0, 10)
	r3 := req("r3", entities.StatusNew)
	r3.DueDate = now.AddDate(0, 0, 5)

	input := []entities.MaintenanceRequest{r1, r2, r3}
	got := RecentRequests(input, 2)

	assert.Equal(t, []string{"r2", "r3"}, ids(got))
	assert.Equal(t, "r1", input[0].ID, "input order is preserved")
}
