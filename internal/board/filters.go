package board

import "gearguard/internal/entities"

// Filters narrows the board view. Categories combine with AND; the selected
// values inside one category combine with OR. An empty category places no
// restriction.
type Filters struct {
	TeamIDs       []string
	TechnicianIDs []string
	RequestTypes  []entities.RequestType
	// EquipmentID is set when the board was entered from an equipment detail
	// page; only requests for that asset pass.
	EquipmentID string
}

func (f Filters) Empty() bool {
	return len(f.TeamIDs) == 0 &&
		len(f.TechnicianIDs) == 0 &&
		len(f.RequestTypes) == 0 &&
		f.EquipmentID == ""
}

// Match reports whether a single request passes every active category.
func (f Filters) Match(r entities.MaintenanceRequest) bool {
	if f.EquipmentID != "" && r.EquipmentID != f.EquipmentID {
		return false
	}
	if len(f.TeamIDs) > 0 && !containsString(f.TeamIDs, r.TeamID) {
		return false
	}
	if len(f.TechnicianIDs) > 0 && !containsString(f.TechnicianIDs, r.AssignedTechnicianID) {
		return false
	}
	if len(f.RequestTypes) > 0 && !containsType(f.RequestTypes, r.RequestType) {
		return false
	}
	return true
}

// Apply returns the order-preserving subsequence of requests matching the
// filter set. Pure and idempotent.
func (f Filters) Apply(requests []entities.MaintenanceRequest) []entities.MaintenanceRequest {
	if f.Empty() {
		return append([]entities.MaintenanceRequest(nil), requests...)
	}
	out := make([]entities.MaintenanceRequest, 0, len(requests))
	for _, r := range requests {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsType(set []entities.RequestType, v entities.RequestType) bool {
	for _, t := range set {
		if t == v {
			return true
		}
	}
	return false
}
