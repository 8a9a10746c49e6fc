package dto

type CreateWorkCenterDTO struct {
	Name                     string   `json:"name" validate:"required,max=255"`
	Description              string   `json:"description" validate:"omitempty,max=2000"`
	Department               string   `json:"department" validate:"required,max=100"`
	Tag                      string   `json:"tag" validate:"omitempty,max=100"`
	AlternativeWorkCenterIDs []string `json:"alternativeWorkCenterIds"`
	CostPerHour              *float64 `json:"costPerHour" validate:"omitempty,gte=0"`
	Capacity                 *int     `json:"capacity" validate:"omitempty,gt=0"`
	OEETarget                *float64 `json:"oeeTarget" validate:"omitempty,gt=0,lte=1"`
}

type UpdateWorkCenterDTO struct {
	Name                     string    `json:"name" validate:"omitempty,max=255"`
	Description              *string   `json:"description" validate:"omitempty,max=2000"`
	Department               string    `json:"department" validate:"omitempty,max=100"`
	Tag                      *string   `json:"tag" validate:"omitempty,max=100"`
	AlternativeWorkCenterIDs *[]string `json:"alternativeWorkCenterIds"`
	CostPerHour              *float64  `json:"costPerHour" validate:"omitempty,gte=0"`
	Capacity                 *int      `json:"capacity" validate:"omitempty,gt=0"`
	OEETarget                *float64  `json:"oeeTarget" validate:"omitempty,gt=0,lte=1"`
}
