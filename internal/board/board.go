package board

import (
	"errors"
	"fmt"

	"gearguard/internal/entities"
)

var (
	ErrUnknownRequest = errors.New("request not found on the board")
	ErrNotInView      = errors.New("request is not part of the current filtered view")
	ErrInvalidColumn  = errors.New("destination column is not a valid status")
)

// Board holds the in-view collection of maintenance requests. The slice
// order is the authoritative render order for every column; the board itself
// performs no I/O.
type Board struct {
	requests []entities.MaintenanceRequest
}

func New(requests []entities.MaintenanceRequest) *Board {
	b := &Board{requests: make([]entities.MaintenanceRequest, len(requests))}
	copy(b.requests, requests)
	return b
}

// Requests returns a copy of the authoritative collection.
func (b *Board) Requests() []entities.MaintenanceRequest {
	out := make([]entities.MaintenanceRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

func (b *Board) Len() int {
	return len(b.requests)
}

// Visible returns the filtered subsequence in collection order.
func (b *Board) Visible(f Filters) []entities.MaintenanceRequest {
	return f.Apply(b.requests)
}

// Column is one kanban lane.
type Column struct {
	Status   entities.RequestStatus       `json:"status"`
	Requests []entities.MaintenanceRequest `json:"requests"`
}

// Columns splits the filtered view into the four status lanes, preserving
// collection order inside each lane.
func (b *Board) Columns(f Filters) []Column {
	columns := make([]Column, len(entities.StatusColumns))
	for i, status := range entities.StatusColumns {
		columns[i] = Column{Status: status, Requests: []entities.MaintenanceRequest{}}
	}
	for _, r := range b.Visible(f) {
		for i := range columns {
			if columns[i].Status == r.Status {
				columns[i].Requests = append(columns[i].Requests, r)
				break
			}
		}
	}
	return columns
}

// Find returns the request with the given id, if present.
func (b *Board) Find(id string) (entities.MaintenanceRequest, bool) {
	for _, r := range b.requests {
		if r.ID == id {
			return r, true
		}
	}
	return entities.MaintenanceRequest{}, false
}

// Snapshot captures the collection so a caller can revert an optimistic
// mutation whose persistence failed.
func (b *Board) Snapshot() []entities.MaintenanceRequest {
	return b.Requests()
}

func (b *Board) Restore(snapshot []entities.MaintenanceRequest) {
	b.requests = make([]entities.MaintenanceRequest, len(snapshot))
	copy(b.requests, snapshot)
}

// MoveResult describes what a MoveCard call changed.
type MoveResult struct {
	RequestID     string                 `json:"requestId"`
	From          entities.RequestStatus `json:"from"`
	To            entities.RequestStatus `json:"to"`
	StatusChanged bool                   `json:"statusChanged"`
	// Moved is false when the drop resolved to the card's current position.
	Moved bool `json:"moved"`
}

// MoveCard applies a drag-and-drop move. destIndex is interpreted within the
// destination column's filtered subsequence; the global insertion point is
// derived from that column neighbour's position in the authoritative
// collection, so intra-column visual order always matches post-move state.
//
// Moving a card onto its own current position is an exact no-op. A move into
// an empty column changes only the status and keeps the card's global
// position.
func (b *Board) MoveCard(requestID string, dest entities.RequestStatus, destIndex int, f Filters) (MoveResult, error) {
	if !dest.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %q", ErrInvalidColumn, dest)
	}

	cur := b.indexOf(requestID)
	if cur < 0 {
		return MoveResult{}, fmt.Errorf("%w: %q", ErrUnknownRequest, requestID)
	}
	card := b.requests[cur]
	if !f.Match(card) {
		return MoveResult{}, fmt.Errorf("%w: %q", ErrNotInView, requestID)
	}

	statusChanged := card.Status != dest
	result := MoveResult{
		RequestID:     requestID,
		From:          card.Status,
		To:            dest,
		StatusChanged: statusChanged,
	}

	if !statusChanged {
		// Same-column drop: resolve the index against the column including
		// the card itself, so "same index" is recognised as a no-op.
		column := b.columnIndices(dest, f, -1)
		curVis := positionIn(column, cur)
		effIdx := clamp(destIndex, 0, len(column)-1)
		if effIdx == curVis {
			return result, nil
		}
	}

	// Column as it will look without the moved card.
	column := b.columnIndices(dest, f, cur)
	destIndex = clamp(destIndex, 0, len(column))

	var insertAt int
	switch {
	case len(column) == 0:
		// Empty destination column: keep the card's slot in the collection.
		insertAt = cur
	case destIndex < len(column):
		insertAt = adjustForRemoval(column[destIndex], cur)
	default:
		insertAt = adjustForRemoval(column[len(column)-1], cur) + 1
	}

	if !statusChanged && insertAt == cur {
		return result, nil
	}

	b.requests = append(b.requests[:cur], b.requests[cur+1:]...)
	card.Status = dest
	b.requests = append(b.requests, entities.MaintenanceRequest{})
	copy(b.requests[insertAt+1:], b.requests[insertAt:])
	b.requests[insertAt] = card

	result.Moved = true
	return result, nil
}

// insertHead prepends a request, making it the most recent entry.
func (b *Board) insertHead(r entities.MaintenanceRequest) {
	b.requests = append([]entities.MaintenanceRequest{r}, b.requests...)
}

func (b *Board) indexOf(id string) int {
	for i, r := range b.requests {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// columnIndices returns the global indices of the visible requests in the
// given column, excluding the request at exclude (pass -1 to keep all).
func (b *Board) columnIndices(status entities.RequestStatus, f Filters, exclude int) []int {
	var out []int
	for i, r := range b.requests {
		if i == exclude {
			continue
		}
		if r.Status == status && f.Match(r) {
			out = append(out, i)
		}
	}
	return out
}

func positionIn(indices []int, global int) int {
	for pos, idx := range indices {
		if idx == global {
			return pos
		}
	}
	return -1
}

// adjustForRemoval shifts a global index to account for the moved card
// having been taken out of the slice.
func adjustForRemoval(idx, removed int) int {
	if idx > removed {
		return idx - 1
	}
	return idx
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
