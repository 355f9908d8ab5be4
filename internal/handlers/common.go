package handlers

import "camp-signup-backend/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"Camper not found"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors" example:"validation errors"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// The API deliberately reports every validation or integrity failure with the
// same coarse body.
func validationErrors() ErrorsResponse {
	return ErrorsResponse{Errors: []string{"validation errors"}}
}

// Type aliases so swag can resolve models in annotations.
type CamperBrief = models.CamperBrief
type CamperDetail = models.CamperDetail
type ActivityBrief = models.ActivityBrief
type ActivityDetail = models.ActivityDetail
type SignupDetail = models.SignupDetail
