package websocket

import "time"

// Event types pushed to connected boards.
const (
	EventCardMoved      = "board.card_moved"
	EventMoveDenied     = "board.move_denied"
	EventRequestCreated = "request.created"
	EventRequestUpdated = "request.updated"
)

// Envelope wraps every outgoing message so the frontend can dispatch on type.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}
