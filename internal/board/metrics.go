package board

import (
	"math"
	"sort"
	"time"

	"gearguard/internal/entities"
)

// Metrics are the dashboard's derived numbers. They are a pure function of
// the input collections and are recomputed on every read.
type Metrics struct {
	TotalEquipment        int                            `json:"totalEquipment"`
	OpenRequests          int                            `json:"openRequests"`
	OverdueRequests       int                            `json:"overdueRequests"`
	CriticalEquipment     int                            `json:"criticalEquipment"`
	TechnicianLoadPercent int                            `json:"technicianLoadPercent"`
	RequestsByStatus      map[entities.RequestStatus]int `json:"requestsByStatus"`
	RequestsByTeam        map[string]int                 `json:"requestsByTeam"`
}

// ComputeMetrics derives the dashboard numbers for a fixed now.
//
// Open counts New and In Progress. Overdue counts open requests past their
// due date, so overdue <= open always holds. Technician load is the share of
// technicians assigned to at least one open request, rounded to the nearest
// whole percent and zero when there are no technicians.
func ComputeMetrics(
	requests []entities.MaintenanceRequest,
	equipment []entities.Equipment,
	users []entities.User,
	now time.Time,
) Metrics {
	m := Metrics{
		TotalEquipment:   len(equipment),
		RequestsByStatus: make(map[entities.RequestStatus]int, len(entities.StatusColumns)),
		RequestsByTeam:   make(map[string]int),
	}

	technicians := make(map[string]bool)
	for _, u := range users {
		if u.Role == entities.RoleTechnician {
			technicians[u.ID] = true
		}
	}

	busy := make(map[string]bool)
	for _, r := range requests {
		m.RequestsByStatus[r.Status]++
		if r.TeamID != "" {
			m.RequestsByTeam[r.TeamID]++
		}
		if r.Open() {
			m.OpenRequests++
			if r.AssignedTechnicianID != "" && technicians[r.AssignedTechnicianID] {
				busy[r.AssignedTechnicianID] = true
			}
		}
		if r.Overdue(now) {
			m.OverdueRequests++
		}
	}

	for _, e := range equipment {
		if e.Critical() {
			m.CriticalEquipment++
		}
	}

	if len(technicians) > 0 {
		m.TechnicianLoadPercent = int(math.Round(float64(len(busy)) / float64(len(technicians)) * 100))
	}

	return m
}

// RecentRequests returns the n requests with the latest due dates, matching
// the dashboard's "recent activity" table. The input is not mutated.
func RecentRequests(requests []entities.MaintenanceRequest, n int) []entities.MaintenanceRequest {
	sorted := make([]entities.MaintenanceRequest, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.After(sorted[j].DueDate)
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
