package dto

type CreateTeamDTO struct {
	Name      string   `json:"name" validate:"required,max=255"`
	Type      string   `json:"type" validate:"required,oneof=Mechanics Electricians IT"`
	MemberIDs []string `json:"memberIds" validate:"omitempty,dive,required"`
}

type UpdateTeamDTO struct {
	Name      string    `json:"name" validate:"omitempty,max=255"`
	Type      string    `json:"type" validate:"omitempty,oneof=Mechanics Electricians IT"`
	MemberIDs *[]string `json:"memberIds"`
}
