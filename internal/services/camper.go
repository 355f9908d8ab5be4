package services

import (
	"camp-signup-backend/internal/models"

	"gorm.io/gorm"
)

type CamperService struct {
	db *gorm.DB
}

func NewCamperService(db *gorm.DB) *CamperService {
	return &CamperService{db: db}
}

func (s *CamperService) ListCampers() ([]models.Camper, error) {
	var campers []models.Camper
	if err := s.db.Order("id ASC").Find(&campers).Error; err != nil {
		return nil, err
	}
	return campers, nil
}

func (s *CamperService) GetCamperByID(camperID uint) (*models.Camper, error) {
	var camper models.Camper
	err := s.db.
		Preload("Signups", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Signups.Activity").
		First(&camper, camperID).Error
	if err != nil {
		return nil, ErrCamperNotFound
	}
	return &camper, nil
}

func (s *CamperService) CreateCamper(name string, age int) (*models.Camper, error) {
	camper := models.Camper{
		Name: name,
		Age:  age,
	}
	if err := camper.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&camper).Error; err != nil {
		return nil, err
	}
	return &camper, nil
}

// UpdateCamper applies only the fields present in the request. Validation runs
// on the merged result before anything is written, so a rejected update leaves
// the stored row as it was.
func (s *CamperService) UpdateCamper(camperID uint, name *string, age *int) (*models.Camper, error) {
	var camper models.Camper
	if err := s.db.First(&camper, camperID).Error; err != nil {
		return nil, ErrCamperNotFound
	}

	updated := camper
	if name != nil {
		updated.Name = *name
	}
	if age != nil {
		updated.Age = *age
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.db.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCamper removes the camper and every signup it owns in one transaction.
func (s *CamperService) DeleteCamper(camperID uint) error {
	var camper models.Camper
	if err := s.db.First(&camper, camperID).Error; err != nil {
		return ErrCamperNotFound
	}

	tx := s.db.Begin()
	if err := tx.Where("camper_id = ?", camperID).Delete(&models.Signup{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&camper).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
