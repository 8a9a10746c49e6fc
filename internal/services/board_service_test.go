package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/ai"
	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/internal/repositories/memory"
	"gearguard/pkg/apperrors"
	"gearguard/pkg/websocket"
)

// failingRequestRepo wraps a request repository and fails selected writes.
type failingRequestRepo struct {
	repositories.RequestRepositoryInterface
	failStatusUpdate bool
	failCreate       bool
}

var errStorage = errors.New("storage unavailable")

func (r *failingRequestRepo) UpdateRequestStatus(ctx context.Context, id string, status entities.RequestStatus) error {
	if r.failStatusUpdate {
		return errStorage
	}
	return r.RequestRepositoryInterface.UpdateRequestStatus(ctx, id, status)
}

func (r *failingRequestRepo) CreateRequest(ctx context.Context, req entities.MaintenanceRequest) error {
	if r.failCreate {
		return errStorage
	}
	return r.RequestRepositoryInterface.CreateRequest(ctx, req)
}

func newBoardService(t *testing.T) (*BoardService, *repositories.Store) {
	t.Helper()
	store := memory.NewStore(memory.Seed(time.Now()))
	svc := NewBoardService(store, repositories.NewMemoryCacheRepository(),
		ai.NewAssistant(nil, zap.NewNop()), nil, nil, zap.NewNop(), time.Minute)
	return svc, store
}

func boardStatus(t *testing.T, svc *BoardService, requestID string) entities.RequestStatus {
	t.Helper()
	columns, err := svc.GetBoard(context.Background(), board.Filters{})
	require.NoError(t, err)
	for _, col := range columns {
		for _, r := range col.Requests {
			if r.ID == requestID {
				return r.Status
			}
		}
	}
	t.Fatalf("request %s not found on board", requestID)
	return ""
}

func TestBoardServiceGetBoardHasFourColumns(t *testing.T) {
	svc, _ := newBoardService(t)

	columns, err := svc.GetBoard(context.Background(), board.Filters{})
	require.NoError(t, err)
	require.Len(t, columns, 4)
	assert.Equal(t, entities.StatusNew, columns[0].Status)
	assert.Equal(t, entities.StatusInProgress, columns[1].Status)
	assert.Equal(t, entities.StatusRepaired, columns[2].Status)
	assert.Equal(t, entities.StatusScrap, columns[3].Status)
}

func TestBoardServiceMoveCardPersistsStatus(t *testing.T) {
	svc, store := newBoardService(t)
	ctx := context.Background()

	// user-1 is an admin
	result, err := svc.MoveCard(ctx, "user-1", dto.MoveCardDTO{
		RequestID:        "req-1",
		DestinationState: string(entities.StatusInProgress),
		DestinationIndex: 0,
	}, board.Filters{})
	require.NoError(t, err)
	assert.True(t, result.StatusChanged)
	assert.Equal(t, entities.StatusInProgress, result.To)

	persisted, err := store.Requests.FindRequest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, persisted.Status)
}

func TestBoardServiceMoveCardDeniedForEmployee(t *testing.T) {
	svc, store := newBoardService(t)
	ctx := context.Background()

	// user-6 is an employee
	_, err := svc.MoveCard(ctx, "user-6", dto.MoveCardDTO{
		RequestID:        "req-1",
		DestinationState: string(entities.StatusRepaired),
	}, board.Filters{})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)

	persisted, err := store.Requests.FindRequest(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusNew, persisted.Status, "denied move must not change anything")
}

func TestBoardServiceMoveCardTechnicianOwnTeamOnly(t *testing.T) {
	svc, _ := newBoardService(t)
	ctx := context.Background()

	// req-1 belongs to team-1; user-3 is a team-1 technician, user-4 is not.
	_, err := svc.MoveCard(ctx, "user-3", dto.MoveCardDTO{
		RequestID:        "req-1",
		DestinationState: string(entities.StatusInProgress),
	}, board.Filters{})
	assert.NoError(t, err)

	_, err = svc.MoveCard(ctx, "user-4", dto.MoveCardDTO{
		RequestID:        "req-1",
		DestinationState: string(entities.StatusRepaired),
	}, board.Filters{})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 403, httpErr.Code)
}

func TestBoardServiceMoveCardRevertsOnPersistenceFailure(t *testing.T) {
	svc, store := newBoardService(t)
	ctx := context.Background()

	// Warm the board before swapping in the failing repository.
	_, err := svc.GetBoard(ctx, board.Filters{})
	require.NoError(t, err)
	store.Requests = &failingRequestRepo{
		RequestRepositoryInterface: store.Requests,
		failStatusUpdate:           true,
	}

	_, err = svc.MoveCard(ctx, "user-1", dto.MoveCardDTO{
		RequestID:        "req-1",
		DestinationState: string(entities.StatusRepaired),
	}, board.Filters{})
	require.ErrorIs(t, err, errStorage)

	assert.Equal(t, entities.StatusNew, boardStatus(t, svc, "req-1"),
		"board must revert when the status change cannot be persisted")
}

func TestBoardServiceMoveCardUnknownRequest(t *testing.T) {
	svc, _ := newBoardService(t)

	_, err := svc.MoveCard(context.Background(), "user-1", dto.MoveCardDTO{
		RequestID:        "req-missing",
		DestinationState: string(entities.StatusRepaired),
	}, board.Filters{})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Code)
}

func TestBoardServiceCreateRequestRollsBackOnFailure(t *testing.T) {
	svc, store := newBoardService(t)
	ctx := context.Background()

	_, err := svc.GetBoard(ctx, board.Filters{})
	require.NoError(t, err)
	store.Requests = &failingRequestRepo{
		RequestRepositoryInterface: store.Requests,
		failCreate:                 true,
	}

	_, err = svc.CreateRequest(ctx, "user-6", dto.CreateRequestDTO{
		Subject:              "Leaking valve",
		EquipmentID:          "equip-1",
		AssignedTechnicianID: "user-3",
		TeamID:               "team-1",
		DueDate:              time.Now().AddDate(0, 0, 3),
	})
	require.ErrorIs(t, err, errStorage)

	columns, err := svc.GetBoard(ctx, board.Filters{})
	require.NoError(t, err)
	for _, col := range columns {
		for _, r := range col.Requests {
			assert.NotEqual(t, "Leaking valve", r.Subject, "failed create must not stay on the board")
		}
	}
}

func TestBoardServiceCreateRequestDefaultsAndPersists(t *testing.T) {
	svc, store := newBoardService(t)
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, "user-6", dto.CreateRequestDTO{
		Subject:              "Coolant refill",
		EquipmentID:          "equip-3",
		AssignedTechnicianID: "user-7",
		TeamID:               "team-1",
		DueDate:              time.Now().AddDate(0, 0, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusNew, created.Status)
	assert.Equal(t, entities.TypeCorrective, created.RequestType)
	assert.Equal(t, entities.PriorityMedium, created.Priority)
	assert.Equal(t, "user-6", created.RequesterID)

	persisted, err := store.Requests.FindRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coolant refill", persisted.Subject)

	columns, err := svc.GetBoard(ctx, board.Filters{})
	require.NoError(t, err)
	require.NotEmpty(t, columns[0].Requests)
	assert.Equal(t, created.ID, columns[0].Requests[0].ID, "new card lands at the head of New")
}

func TestBoardServiceCreateRequestValidation(t *testing.T) {
	svc, _ := newBoardService(t)

	_, err := svc.CreateRequest(context.Background(), "user-6", dto.CreateRequestDTO{})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Code)
	assert.Contains(t, httpErr.Details, "missing")
}

func TestBoardServiceMoveCardDeniedNotifiesActingUser(t *testing.T) {
	store := memory.NewStore(memory.Seed(time.Now()))
	hub := websocket.NewHub(zap.NewNop())
	go hub.Run()
	svc := NewBoardService(store, repositories.NewMemoryCacheRepository(),
		ai.NewAssistant(nil, zap.NewNop()), hub, nil, zap.NewNop(), time.Minute)

	client := websocket.NewClient(hub, nil, "user-6")
	hub.Register <- client
	// A broadcast flushes the register through the hub's run loop.
	hub.Broadcast("sync", nil)
	requireEnvelope(t, client, "sync")

	// user-6 is an employee
	_, err := svc.MoveCard(context.Background(), "user-6", dto.MoveCardDTO{
		RequestID:        "req-1",
		DestinationState: string(entities.StatusRepaired),
	}, board.Filters{})
	require.Error(t, err)

	env := requireEnvelope(t, client, websocket.EventMoveDenied)
	verdict, ok := env.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, verdict["allowed"])
	assert.NotEmpty(t, verdict["reason"])
}

func requireEnvelope(t *testing.T, client *websocket.Client, eventType string) websocket.Envelope {
	t.Helper()
	select {
	case raw := <-client.Send:
		var env websocket.Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		require.Equal(t, eventType, env.Type)
		return env
	case <-time.After(time.Second):
		t.Fatalf("no %s event received", eventType)
		return websocket.Envelope{}
	}
}
