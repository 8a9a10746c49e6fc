package dto

type SuggestAssignmentDTO struct {
	Subject     string `json:"subject" validate:"required,max=255"`
	EquipmentID string `json:"equipmentId" validate:"required"`
}

type SuggestAssignmentResponseDTO struct {
	TeamID       string `json:"teamId"`
	TechnicianID string `json:"technicianId"`
	Reason       string `json:"reason"`
}
