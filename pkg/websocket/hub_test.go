package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func receive(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case raw := <-c.Send:
		var env Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		return env
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return Envelope{}
	}
}

// syncWithHub pushes a broadcast through the run loop so every earlier
// register has been processed before the caller continues.
func syncWithHub(t *testing.T, hub *Hub, clients ...*Client) {
	t.Helper()
	hub.Broadcast("sync", nil)
	for _, c := range clients {
		require.Equal(t, "sync", receive(t, c).Type)
	}
}

func TestHubSendMessageToUserTargetsOneUser(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	alice := NewClient(hub, nil, "user-1")
	bob := NewClient(hub, nil, "user-2")
	hub.Register <- alice
	hub.Register <- bob
	syncWithHub(t, hub, alice, bob)

	require.NoError(t, hub.SendMessageToUser("user-1", EventMoveDenied, map[string]string{"reason": "not your team"}))

	env := receive(t, alice)
	assert.Equal(t, EventMoveDenied, env.Type)

	select {
	case raw := <-bob.Send:
		t.Fatalf("unexpected message for other user: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubEvictedClientLeavesUserIndex(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	// The stuck client has no reader and no buffer, so the first broadcast
	// that reaches it evicts it.
	stuck := &Client{Hub: hub, Send: make(chan []byte), UserID: "user-1"}
	healthy := NewClient(hub, nil, "user-1")
	hub.Register <- stuck
	hub.Register <- healthy
	syncWithHub(t, hub, healthy)

	hub.Broadcast(EventCardMoved, nil)
	require.Equal(t, EventCardMoved, receive(t, healthy).Type)

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.userClients["user-1"]) == 1
	}, time.Second, 10*time.Millisecond)

	// Sends on a closed channel panic, so delivery after eviction proves
	// the user index was cleaned up with the client set.
	require.NoError(t, hub.SendMessageToUser("user-1", EventRequestUpdated, nil))
	assert.Equal(t, EventRequestUpdated, receive(t, healthy).Type)
}
