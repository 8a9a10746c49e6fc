package utils

import (
	"net/http"
	"net/url"
	"strings"

	"gearguard/internal/board"
	"gearguard/internal/entities"
	"gearguard/pkg/apperrors"
)

// ParseBoardFilters reads the filter[...] query parameters into board filters.
// List parameters accept comma separated values and repeated keys.
func ParseBoardFilters(values url.Values) (board.Filters, error) {
	f := board.Filters{
		TeamIDs:       splitParam(values["filter[team_id]"]),
		TechnicianIDs: splitParam(values["filter[technician_id]"]),
		EquipmentID:   strings.TrimSpace(values.Get("filter[equipment_id]")),
	}

	for _, raw := range splitParam(values["filter[request_type]"]) {
		rt := entities.RequestType(raw)
		if rt != entities.TypeCorrective && rt != entities.TypePreventive {
			return board.Filters{}, apperrors.NewHttpError(http.StatusBadRequest, "unknown request type: "+raw, apperrors.ErrBadRequest, nil)
		}
		f.RequestTypes = append(f.RequestTypes, rt)
	}
	return f, nil
}

func splitParam(raw []string) []string {
	var out []string
	for _, chunk := range raw {
		for _, v := range strings.Split(chunk, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
