package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/board"
	"gearguard/internal/entities"
	"gearguard/pkg/apperrors"
)

func TestSeedIsConsistent(t *testing.T) {
	data := Seed(time.Now())

	teams := make(map[string]entities.Team, len(data.Teams))
	for _, tm := range data.Teams {
		teams[tm.ID] = tm
	}
	equipment := make(map[string]bool, len(data.Equipment))
	for _, e := range data.Equipment {
		equipment[e.ID] = true
	}
	users := make(map[string]entities.User, len(data.Users))
	for _, u := range data.Users {
		users[u.ID] = u
	}

	for _, req := range data.Requests {
		assert.True(t, equipment[req.EquipmentID], "request %s references unknown equipment", req.ID)
		tm, ok := teams[req.TeamID]
		require.True(t, ok, "request %s references unknown team", req.ID)
		assert.True(t, tm.HasMember(req.AssignedTechnicianID),
			"request %s technician is not a member of its team", req.ID)
		_, ok = users[req.RequesterID]
		assert.True(t, ok, "request %s references unknown requester", req.ID)
	}
}

func TestRequestRepositoryOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Seed(time.Now()))

	before, err := store.Requests.ListRequests(ctx, board.Filters{})
	require.NoError(t, err)

	created := entities.MaintenanceRequest{
		ID: "req-new", Subject: "Belt tension check", EquipmentID: "equip-3",
		AssignedTechnicianID: "user-3", TeamID: "team-1", RequesterID: "user-6",
		DueDate: time.Now().AddDate(0, 0, 7), Status: entities.StatusNew,
		RequestType: entities.TypePreventive, Priority: entities.PriorityLow,
	}
	require.NoError(t, store.Requests.CreateRequest(ctx, created))

	after, err := store.Requests.ListRequests(ctx, board.Filters{})
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "req-new", after[0].ID, "newest request should come first")
}

func TestRequestRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Seed(time.Now()))

	got, err := store.Requests.ListRequests(ctx, board.Filters{TeamIDs: []string{"team-1"}})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, req := range got {
		assert.Equal(t, "team-1", req.TeamID)
	}

	got, err = store.Requests.ListRequests(ctx, board.Filters{EquipmentID: "equip-1"})
	require.NoError(t, err)
	for _, req := range got {
		assert.Equal(t, "equip-1", req.EquipmentID)
	}
}

func TestRequestRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Seed(time.Now()))

	require.NoError(t, store.Requests.UpdateRequestStatus(ctx, "req-1", entities.StatusInProgress))
	found, err := store.Requests.FindRequest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, found.Status)

	err = store.Requests.UpdateRequestStatus(ctx, "req-missing", entities.StatusRepaired)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreDoesNotAliasSeed(t *testing.T) {
	ctx := context.Background()
	data := Seed(time.Now())
	store := NewStore(data)

	require.NoError(t, store.Requests.UpdateRequestStatus(ctx, data.Requests[0].ID, entities.StatusRepaired))
	assert.NotEqual(t, entities.StatusRepaired, data.Requests[0].Status,
		"mutations must not leak into the caller's dataset")
}

func TestEquipmentRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Seed(time.Now()))

	created := entities.Equipment{
		ID: "equip-new", Name: "Laser Cutter", SerialNumber: "SN-LC-007",
		Department: "Manufacturing", MaintenanceTeamID: "team-1",
		Status: entities.EquipmentOperational, Health: 100,
	}
	require.NoError(t, store.Equipment.CreateEquipment(ctx, created))

	found, err := store.Equipment.FindEquipment(ctx, "equip-new")
	require.NoError(t, err)
	assert.Equal(t, "Laser Cutter", found.Name)

	created.Health = 80
	require.NoError(t, store.Equipment.UpdateEquipment(ctx, created))
	found, err = store.Equipment.FindEquipment(ctx, "equip-new")
	require.NoError(t, err)
	assert.Equal(t, 80, found.Health)

	require.NoError(t, store.Equipment.DeleteEquipment(ctx, "equip-new"))
	_, err = store.Equipment.FindEquipment(ctx, "equip-new")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Seed(time.Now()))

	u, err := store.Users.FindUserByEmail(ctx, "SARAH.LEE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, entities.RoleAdmin, u.Role)

	_, err = store.Users.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWorkCenterRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Seed(time.Now()))

	centers, err := store.WorkCenters.ListWorkCenters(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, centers)

	err = store.WorkCenters.DeleteWorkCenter(ctx, centers[0].ID)
	require.NoError(t, err)
	_, err = store.WorkCenters.FindWorkCenter(ctx, centers[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
