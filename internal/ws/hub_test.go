package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialHub stands up a server that registers each incoming connection with the
// hub and returns a connected client. The returned channel closes once the
// connection is registered.
func dialHub(t *testing.T, hub *Hub, activityID uint) (*websocket.Conn, chan struct{}) {
	t.Helper()

	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.AddConnection(activityID, conn)
		close(registered)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn, registered
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	conn, registered := dialHub(t, hub, 7)

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("connection never registered")
	}

	hub.Broadcast(7, WSMessage{
		Type: EventSignupCreated,
		Data: map[string]interface{}{"signup_id": 1},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg WSMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, EventSignupCreated, msg.Type)
}

func TestHubBroadcastToUnknownActivityIsNoop(t *testing.T) {
	hub := NewHub()

	// Nothing listening; must not panic or block.
	hub.Broadcast(42, WSMessage{Type: EventActivityDeleted})
}

func TestHubRemoveConnection(t *testing.T) {
	hub := NewHub()
	conn, registered := dialHub(t, hub, 7)

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("connection never registered")
	}

	hub.mu.RLock()
	require.Len(t, hub.activities[7], 1)
	var serverConn *websocket.Conn
	for c := range hub.activities[7] {
		serverConn = c
	}
	hub.mu.RUnlock()

	hub.RemoveConnection(7, serverConn)

	hub.mu.RLock()
	assert.NotContains(t, hub.activities, uint(7), "empty activity entries are dropped")
	hub.mu.RUnlock()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "client side sees the close")
}
