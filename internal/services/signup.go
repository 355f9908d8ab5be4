package services

import (
	"camp-signup-backend/internal/models"

	"gorm.io/gorm"
)

type SignupService struct {
	db *gorm.DB
}

func NewSignupService(db *gorm.DB) *SignupService {
	return &SignupService{db: db}
}

// CreateSignup inserts a signup after checking that both parents exist and the
// time is a valid hour. Nothing is written on failure.
func (s *SignupService) CreateSignup(camperID, activityID uint, time int) (*models.Signup, error) {
	var camper models.Camper
	if err := s.db.First(&camper, camperID).Error; err != nil {
		return nil, &models.ValidationError{Field: "camper_id", Message: "camper does not exist"}
	}

	var activity models.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		return nil, &models.ValidationError{Field: "activity_id", Message: "activity does not exist"}
	}

	signup := models.Signup{
		Time:       time,
		CamperID:   camperID,
		ActivityID: activityID,
	}
	if err := signup.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&signup).Error; err != nil {
		return nil, err
	}

	s.db.Preload("Activity").Preload("Camper").First(&signup, signup.ID)
	return &signup, nil
}
