package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"camp-signup-backend/internal/models"
	"camp-signup-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CamperHandler struct {
	camperService *services.CamperService
}

func NewCamperHandler(camperService *services.CamperService) *CamperHandler {
	return &CamperHandler{camperService: camperService}
}

type CreateCamperRequest struct {
	Name string `json:"name" example:"Alex"`
	Age  int    `json:"age" example:"12"`
}

type UpdateCamperRequest struct {
	Name *string `json:"name,omitempty" example:"Alex"`
	Age  *int    `json:"age,omitempty" example:"12"`
}

// ListCampers godoc
// @Summary      List all campers
// @Description  Get all campers without their signups
// @Tags         campers
// @Produce      json
// @Success      200 {array} CamperBrief
// @Router       /campers [get]
func (h *CamperHandler) ListCampers(c *gin.Context) {
	campers, err := h.camperService.ListCampers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CamperBriefsFromModels(campers))
}

// GetCamper godoc
// @Summary      Get a camper
// @Description  Get a camper with their signups; each signup carries its activity
// @Tags         campers
// @Produce      json
// @Param        id path int true "Camper ID"
// @Success      200 {object} CamperDetail
// @Failure      404 {object} ErrorResponse
// @Router       /campers/{id} [get]
func (h *CamperHandler) GetCamper(c *gin.Context) {
	camperID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid camper id"})
		return
	}

	camper, err := h.camperService.GetCamperByID(uint(camperID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.CamperDetailFromModel(*camper))
}

// CreateCamper godoc
// @Summary      Create a camper
// @Description  Create a camper with a name and an age between 8 and 18
// @Tags         campers
// @Accept       json
// @Produce      json
// @Param        request body CreateCamperRequest true "Camper data"
// @Success      201 {object} CamperBrief
// @Failure      400 {object} ErrorsResponse
// @Router       /campers [post]
func (h *CamperHandler) CreateCamper(c *gin.Context) {
	var req CreateCamperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors())
		return
	}

	camper, err := h.camperService.CreateCamper(req.Name, req.Age)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, validationErrors())
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.CamperBriefFromModel(*camper))
}

// UpdateCamper godoc
// @Summary      Update a camper
// @Description  Patch a camper's name and/or age
// @Tags         campers
// @Accept       json
// @Produce      json
// @Param        id path int true "Camper ID"
// @Param        request body UpdateCamperRequest true "Fields to update"
// @Success      202 {object} CamperBrief
// @Failure      400 {object} ErrorsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /campers/{id} [patch]
func (h *CamperHandler) UpdateCamper(c *gin.Context) {
	camperID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid camper id"})
		return
	}

	var req UpdateCamperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors())
		return
	}

	camper, err := h.camperService.UpdateCamper(uint(camperID), req.Name, req.Age)
	if err != nil {
		if errors.Is(err, services.ErrCamperNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, validationErrors())
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, models.CamperBriefFromModel(*camper))
}
