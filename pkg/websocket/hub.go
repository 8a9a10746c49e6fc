package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Hub tracks connected clients and fans board events out to them.
type Hub struct {
	clients     map[*Client]bool
	userClients map[string][]*Client
	broadcast   chan []byte
	Register    chan *Client
	unregister  chan *Client
	logger      *zap.Logger
	mu          sync.RWMutex
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:     make(map[*Client]bool),
		userClients: make(map[string][]*Client),
		broadcast:   make(chan []byte, 16),
		Register:    make(chan *Client),
		unregister:  make(chan *Client),
		logger:      logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.userClients[client.UserID] = append(h.userClients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", zap.String("userID", client.UserID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				h.dropClient(client)
			}
			h.mu.Unlock()
			h.logger.Debug("websocket client disconnected", zap.String("userID", client.UserID))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					h.dropClient(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// dropClient removes a client from both indexes and closes its channel.
// Callers must hold h.mu.
func (h *Hub) dropClient(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	remaining := h.userClients[client.UserID][:0]
	for _, c := range h.userClients[client.UserID] {
		if c != client {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == 0 {
		delete(h.userClients, client.UserID)
	} else {
		h.userClients[client.UserID] = remaining
	}
}

// Broadcast sends an event to every connected client. Board state is shared,
// so moves and new requests go to everyone.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	envelope := Envelope{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	message, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("marshaling websocket envelope", zap.Error(err))
		return
	}
	h.broadcast <- message
}

// SendMessageToUser delivers an event to one user's open connections only.
func (h *Hub) SendMessageToUser(userID string, eventType string, payload interface{}) error {
	envelope := Envelope{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	message, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.userClients[userID] {
		select {
		case client.Send <- message:
		default:
		}
	}
	return nil
}
