package handlers

import (
	"errors"
	"net/http"

	"camp-signup-backend/internal/models"
	"camp-signup-backend/internal/services"
	"camp-signup-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type SignupHandler struct {
	signupService *services.SignupService
	hub           *ws.Hub
}

func NewSignupHandler(signupService *services.SignupService, hub *ws.Hub) *SignupHandler {
	return &SignupHandler{signupService: signupService, hub: hub}
}

type CreateSignupRequest struct {
	CamperID   uint `json:"camper_id" binding:"required" example:"1"`
	ActivityID uint `json:"activity_id" binding:"required" example:"1"`
	Time       int  `json:"time" example:"9"`
}

// CreateSignup godoc
// @Summary      Sign a camper up for an activity
// @Description  Create a signup joining an existing camper to an existing activity at an hour between 0 and 23
// @Tags         signups
// @Accept       json
// @Produce      json
// @Param        request body CreateSignupRequest true "Signup data"
// @Success      201 {object} SignupDetail
// @Failure      400 {object} ErrorsResponse
// @Router       /signups [post]
func (h *SignupHandler) CreateSignup(c *gin.Context) {
	var req CreateSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors())
		return
	}

	signup, err := h.signupService.CreateSignup(req.CamperID, req.ActivityID, req.Time)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, validationErrors())
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	detail := models.SignupDetailFromModel(*signup)

	h.hub.Broadcast(signup.ActivityID, ws.WSMessage{
		Type: ws.EventSignupCreated,
		Data: detail,
	})

	c.JSON(http.StatusCreated, detail)
}
