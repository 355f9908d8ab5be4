package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Event types pushed to roster subscribers.
const (
	EventSignupCreated   = "signup_created"
	EventActivityDeleted = "activity_deleted"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans out roster events to the clients watching each activity.
type Hub struct {
	mu         sync.RWMutex
	activities map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		activities: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(activityID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.activities[activityID] == nil {
		h.activities[activityID] = make(map[*websocket.Conn]bool)
	}
	h.activities[activityID][conn] = true
	log.Printf("ws: client watching activity %d (total: %d)", activityID, len(h.activities[activityID]))
}

func (h *Hub) RemoveConnection(activityID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.activities[activityID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.activities, activityID)
		}
		log.Printf("ws: client stopped watching activity %d", activityID)
	}
}

func (h *Hub) Broadcast(activityID uint, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.activities[activityID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
