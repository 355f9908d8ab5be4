package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"camp-signup-backend/internal/models"
	"camp-signup-backend/internal/services"
	"camp-signup-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *services.ActivityService
	hub             *ws.Hub
}

func NewActivityHandler(activityService *services.ActivityService, hub *ws.Hub) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, hub: hub}
}

// ListActivities godoc
// @Summary      List all activities
// @Description  Get all activities without their signups
// @Tags         activities
// @Produce      json
// @Success      200 {array} ActivityBrief
// @Router       /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.activityService.ListActivities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ActivityBriefsFromModels(activities))
}

// GetActivity godoc
// @Summary      Get an activity
// @Description  Get an activity with its signups; each signup carries its camper
// @Tags         activities
// @Produce      json
// @Param        id path int true "Activity ID"
// @Success      200 {object} ActivityDetail
// @Failure      404 {object} ErrorResponse
// @Router       /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid activity id"})
		return
	}

	activity, err := h.activityService.GetActivityByID(uint(activityID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ActivityDetailFromModel(*activity))
}

// DeleteActivity godoc
// @Summary      Delete an activity
// @Description  Delete an activity and all signups referencing it
// @Tags         activities
// @Produce      json
// @Param        id path int true "Activity ID"
// @Success      204 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	activityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid activity id"})
		return
	}

	if err := h.activityService.DeleteActivity(uint(activityID)); err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(uint(activityID), ws.WSMessage{
		Type: ws.EventActivityDeleted,
		Data: gin.H{"activity_id": activityID},
	})

	c.JSON(http.StatusNoContent, MessageResponse{Message: "activity deleted"})
}
