package dto

import (
	"gearguard/internal/board"
	"gearguard/internal/entities"
)

type MoveCardDTO struct {
	RequestID        string `json:"requestId" validate:"required"`
	DestinationState string `json:"destinationState" validate:"required,request_status"`
	DestinationIndex int    `json:"destinationIndex" validate:"gte=0"`
}

type MoveCardResponseDTO struct {
	RequestID     string                 `json:"requestId"`
	From          entities.RequestStatus `json:"from"`
	To            entities.RequestStatus `json:"to"`
	StatusChanged bool                   `json:"statusChanged"`
	Moved         bool                   `json:"moved"`
}

type BoardDTO struct {
	Columns []board.Column `json:"columns"`
}
