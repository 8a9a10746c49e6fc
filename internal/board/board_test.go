package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
)

func req(id string, status entities.RequestStatus) entities.MaintenanceRequest {
	return entities.MaintenanceRequest{
		ID:                   id,
		Subject:              "subject " + id,
		EquipmentID:          "equip-1",
		AssignedTechnicianID: "user-3",
		TeamID:               "team-1",
		RequesterID:          "user-6",
		DueDate:              time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:               status,
		RequestType:          entities.TypeCorrective,
		Priority:             entities.PriorityMedium,
	}
}

func ids(requests []entities.MaintenanceRequest) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.ID
	}
	return out
}

func TestFiltersApply_EmptyFiltersReturnsAll(t *testing.T) {
	requests := []entities.MaintenanceRequest{
		req("r1", entities.StatusNew),
		req("r2", entities.StatusRepaired),
	}

	got := Filters{}.Apply(requests)

	assert.Equal(t, requests, got, "empty filters must not restrict or reorder")

	// Apply always returns a copy, including on the empty fast path.
	got[0].Subject = "mutated"
	assert.Equal(t, "subject r1", requests[0].Subject)
}

func TestFiltersApply_IsSubsequence(t *testing.T) {
	r1 := req("r1", entities.StatusNew)
	r1.RequestType = entities.TypeCorrective
	r2 := req("r2", entities.StatusRepaired)
	r2.RequestType = entities.TypePreventive
	r3 := req("r3", entities.StatusNew)
	r3.RequestType = entities.TypePreventive

	f := Filters{RequestTypes: []entities.RequestType{entities.TypePreventive}}
	got := f.Apply([]entities.MaintenanceRequest{r1, r2, r3})

	assert.Equal(t, []string{"r2", "r3"}, ids(got))
}

func TestFiltersApply_Idempotent(t *testing.T) {
	r1 := req("r1", entities.StatusNew)
	r2 := req("r2", entities.StatusInProgress)
	r2.TeamID = "team-2"
	r3 := req("r3", entities.StatusNew)

	f := Filters{TeamIDs: []string{"team-1"}}
	once := f.Apply([]entities.MaintenanceRequest{r1, r2, r3})
	twice := f.Apply(once)

	assert.Equal(t, once, twice)
}

func TestFiltersApply_CategoriesCombineWithAND(t *testing.T) {
	r1 := req("r1", entities.StatusNew)
	r1.TeamID = "team-1"
	r1.RequestType = entities.TypePreventive
	r2 := req("r2", entities.StatusNew)
	r2.TeamID = "team-1"
	r2.RequestType = entities.TypeCorrective
	r3 := req("r3", entities.StatusNew)
	r3.TeamID = "team-2"
	r3.RequestType = entities.TypePreventive

	f := Filters{
		TeamIDs:      []string{"team-1"},
		RequestTypes: []entities.RequestType{entities.TypePreventive},
	}
	got := f.Apply([]entities.MaintenanceRequest{r1, r2, r3})

	assert.Equal(t, []string{"r1"}, ids(got))
}

func TestFiltersApply_ValuesWithinCategoryCombineWithOR(t *testing.T) {
	r1 := req("r1", entities.StatusNew)
	r1.TeamID = "team-1"
	r2 := req("r2", entities.StatusNew)
	r2.TeamID = "team-2"
	r3 := req("r3", entities.StatusNew)
	r3.TeamID = "team-3"

	f := Filters{TeamIDs: []string{"team-1", "team-3"}}
	got := f.Apply([]entities.MaintenanceRequest{r1, r2, r3})

	assert.Equal(t, []string{"r1", "r3"}, ids(got))
}

func TestFiltersApply_EquipmentConstraint(t *testing.T) {
	r1 := req("r1", entities.StatusNew)
	r1.EquipmentID = "equip-1"
	r2 := req("r2", entities.StatusNew)
	r2.EquipmentID = "equip-2"

	f := Filters{EquipmentID: "equip-2"}
	got := f.Apply([]entities.MaintenanceRequest{r1, r2})

	assert.Equal(t, []string{"r2"}, ids(got))
}

func TestMoveCard_CrossColumnUpdatesOnlyThatCard(t *testing.T) {
	b := New([]entities.MaintenanceRequest{
		req("r1", entities.StatusNew),
		req("r2", entities.StatusRepaired),
	})

	result, err := b.MoveCard("r1", entities.StatusInProgress, 0, Filters{})
	require.NoError(t, err)

	assert.True(t, result.StatusChanged)
	assert.Equal(t, entities.StatusNew, result.From)
	assert.Equal(t, entities.StatusInProgress, result.To)

	requests := b.Requests()
	require.Len(t, requests, 2, "collection length must not change")
	moved, ok := b.Find("r1")
	require.True(t, ok)
	assert.Equal(t, entities.StatusInProgress, moved.Status)
	other, ok := b.Find("r2")
	require.True(t, ok)
	assert.Equal(t, entities.StatusRepaired, other.Status, "r2 must be untouched")
}

func TestMoveCard_SamePositionIsNoOp(t *testing.T) {
	initial := []entities.MaintenanceRequest{
		req("r1", entities.StatusNew),
		req("r2", entities.StatusNew),
		req("r3", entities.StatusNew),
	}
	b := New(initial)

	result, err := b.MoveCard("r2", entities.StatusNew, 1, Filters{})
	require.NoError(t, err)

	assert.False(t, result.Moved)
	assert.False(t, result.StatusChanged)
	assert.Equal(t, initial, b.Requests(), "no-op move must leave order and statuses unchanged")
}

func TestMoveCard_ReorderWithinColumn(t *testing.T) {
	b := New([]entities.MaintenanceRequest{
		req("r1", entities.StatusNew),
		req("r2", entities.StatusNew),
		req("r3", entities.StatusNew),
	})

	result, err := b.MoveCard("r1", entities.StatusNew, 2, Filters{})
	require.NoError(t, err)

	assert.True(t, result.Moved)
	assert.False(t, result.StatusChanged)
	assert.Equal(t, []string{"r2", "r3", "r1"}, ids(b.Requests()))
}

func TestMoveCard_DestIndexResolvedWithinDestinationColumn(t *testing.T) {
	// Interleaved columns: the destination index counts cards in the
	// destination column only, not positions in the whole collection.
	b := New([]entities.MaintenanceRequest{
		req("n1", entities.StatusNew),
		req("p1", entities.StatusInProgress),
		req("n2", entities.StatusNew),
		req("p2", entities.StatusInProgress),
	})

	// Drop n2 between p1 and p2 (column position 1).
	result, err := b.MoveCard("n2", entities.StatusInProgress, 1, Filters{})
	require.NoError(t, err)
	require.True(t, result.StatusChanged)

	inProgress := b.Columns(Filters{})[1]
	require.Equal(t, entities.StatusInProgress, inProgress.Status)
	assert.Equal(t, []string{"p1", "n2", "p2"}, ids(inProgress.Requests))
}

func TestMoveCard_AppendsAtColumnEnd(t *testing.T) {
	b := New([]entities.MaintenanceRequest{
		req("p1", entities.StatusInProgress),
		req("n1", entities.StatusNew),
		req("p2", entities.StatusInProgress),
	})

	_, err := b.MoveCard("n1", entities.StatusInProgress, 2, Filters{})
	require.NoError(t, err)

	inProgress := b.Columns(Filters{})[1]
	assert.Equal(t, []string{"p1", "p2", "n1"}, ids(inProgress.Requests))
}

func TestMoveCard_IntoEmptyColumnKeepsPosition(t *testing.T) {
	b := New([]entities.MaintenanceRequest{
		req("r1", entities.StatusNew),
		req("r2", entities.StatusNew),
	})

	result, err := b.MoveCard("r2", entities.StatusScrap, 0, Filters{})
	require.NoError(t, err)

	assert.True(t, result.StatusChanged)
	assert.Equal(t, []string{"r1", "r2"}, ids(b.Requests()))
	moved, _ := b.Find("r2")
	assert.Equal(t, entities.StatusScrap, moved.Status)
}

func TestMoveCard_RespectsActiveFilters(t *testing.T) {
	// With a team filter active the hidden p2 must not count toward the
	// destination index.
	p1 := req("p1", entities.StatusInProgress)
	p2 := req("p2", entities.StatusInProgress)
	p2.TeamID = "team-2"
	p3 := req("p3", entities.StatusInProgress)
	n1 := req("n1", entities.StatusNew)
	b := New([]entities.MaintenanceRequest{p1, p2, p3, n1})

	f := Filters{TeamIDs: []string{"team-1"}}
	_, err := b.MoveCard("n1", entities.StatusInProgress, 1, f)
	require.NoError(t, err)

	visible := New(b.Requests()).Columns(f)[1]
	assert.Equal(t, []string{"p1", "n1", "p3"}, ids(visible.Requests),
		"index 1 means after the first *visible* card")
}

func TestMoveCard_Errors(t *testing.T) {
	b := New([]entities.MaintenanceRequest{req("r1", entities.StatusNew)})

	_, err := b.MoveCard("missing", entities.StatusNew, 0, Filters{})
	assert.ErrorIs(t, err, ErrUnknownRequest)

	_, err = b.MoveCard("r1", entities.RequestStatus("Archived"), 0, Filters{})
	assert.ErrorIs(t, err, ErrInvalidColumn)

	_, err = b.MoveCard("r1", entities.StatusNew, 0, Filters{TeamIDs: []string{"other-team"}})
	assert.ErrorIs(t, err, ErrNotInView)
}

func TestSnapshotRestore(t *testing.T) {
	b := New([]entities.MaintenanceRequest{
		req("r1", entities.StatusNew),
		req("r2", entities.StatusNew),
	})
	snapshot := b.Snapshot()

	_, err := b.MoveCard("r1", entities.StatusScrap, 0, Filters{})
	require.NoError(t, err)
	require.NotEqual(t, snapshot, b.Requests())

	b.Restore(snapshot)
	assert.Equal(t, snapshot, b.Requests())
}

func TestCreateRequest_EmptyDraftListsRequiredFields(t *testing.T) {
	b := New(nil)

	_, err := b.CreateRequest(Draft{}, time.Now())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Missing, "subject")
	assert.Contains(t, vErr.Missing, "equipmentId")
	assert.Contains(t, vErr.Missing, "dueDate")
	assert.Contains(t, vErr.Missing, "teamId")
	assert.Contains(t, vErr.Missing, "assignedTechnicianId")
	assert.Equal(t, 0, b.Len(), "rejected draft must not touch the collection")
}

func TestCreateRequest_MissingSubjectOnly(t *testing.T) {
	b := New(nil)

	_, err := b.CreateRequest(Draft{
		EquipmentID:          "equip-1",
		TeamID:               "team-1",
		AssignedTechnicianID: "user-3",
		DueDate:              time.Now(),
	}, time.Now())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"subject"}, vErr.Missing)
}

func TestCreateRequest_ValidDraft(t *testing.T) {
	existing := req("r1", entities.StatusInProgress)
	b := New([]entities.MaintenanceRequest{existing})
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	created, err := b.CreateRequest(Draft{
		Subject:              "Grinding noise from main spindle",
		EquipmentID:          "equip-1",
		TeamID:               "team-1",
		AssignedTechnicianID: "user-3",
		RequesterID:          "user-6",
		DueDate:              now.AddDate(0, 0, 3),
	}, now)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusNew, created.Status)
	assert.Equal(t, entities.TypeCorrective, created.RequestType, "request type defaults to corrective")
	assert.Equal(t, entities.PriorityMedium, created.Priority)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, existing.ID, created.ID, "id must be unique in the collection")

	requests := b.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, created.ID, requests[0].ID, "new request is inserted at the head")
}
