package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

// WorkCenter is a named operational station. It is loosely related to
// equipment; there is no strong join in the data model.
type WorkCenter struct {
	ID                       string              `json:"id" db:"id"`
	Name                     string              `json:"name" db:"name"`
	Description              string              `json:"description" db:"description"`
	Department               string              `json:"department" db:"department"`
	Tag                      null.String         `json:"tag,omitempty" db:"tag"`
	AlternativeWorkCenterIDs []string            `json:"alternativeWorkCenterIds,omitempty" db:"alternative_work_center_ids"`
	CostPerHour              decimal.NullDecimal `json:"costPerHour,omitempty" db:"cost_per_hour"`
	Capacity                 null.Int            `json:"capacity,omitempty" db:"capacity"`
	OEETarget                null.Float64        `json:"oeeTarget,omitempty" db:"oee_target"`
}
