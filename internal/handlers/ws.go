package handlers

import (
	"log"
	"net/http"
	"strconv"

	"camp-signup-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleRosterFeed godoc
// @Summary      WebSocket feed of roster changes for an activity
// @Description  Connect via WebSocket to receive signup_created and activity_deleted events
// @Tags         websocket
// @Param        id path int true "Activity ID"
// @Router       /ws/activities/{id} [get]
func (h *WSHandler) HandleRosterFeed(c *gin.Context) {
	activityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid activity id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	aid := uint(activityID)
	h.hub.AddConnection(aid, conn)
	defer h.hub.RemoveConnection(aid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
