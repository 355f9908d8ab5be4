package services

import (
	"camp-signup-backend/internal/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) ListActivities() ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *ActivityService) GetActivityByID(activityID uint) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.
		Preload("Signups", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Signups.Camper").
		First(&activity, activityID).Error
	if err != nil {
		return nil, ErrActivityNotFound
	}
	return &activity, nil
}

// DeleteActivity removes the activity and every signup referencing it in one
// transaction.
func (s *ActivityService) DeleteActivity(activityID uint) error {
	var activity models.Activity
	if err := s.db.First(&activity, activityID).Error; err != nil {
		return ErrActivityNotFound
	}

	tx := s.db.Begin()
	if err := tx.Where("activity_id = ?", activityID).Delete(&models.Signup{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&activity).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
