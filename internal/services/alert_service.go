package services

import (
	"errors"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/models"
	"gorm.io/gorm"
)

type AlertService struct {
	DB *gorm.DB
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{DB: db}
}

// Create stores the owner's single standing alert. One alert per owner is a
// store-level unique index; the pre-insert check gives a clean Conflict
// instead of a driver error.
func (s *AlertService) Create(ownerID uint, req *dtos.AlertCreateRequest) (*models.Alert, error) {
	var existing models.Alert
	err := s.DB.Where("owner_id = ?", ownerID).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("An alert already exists for this user.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Something went wrong", err)
	}

	alert := models.Alert{
		OwnerID:      ownerID,
		Role:         req.Role,
		Requirements: req.Requirements,
		MinSalary:    req.MinSalary,
		MaxSalary:    req.MaxSalary,
		Location:     req.Location,
	}
	if err := s.DB.Create(&alert).Error; err != nil {
		return nil, apperrors.Internal("Something went wrong", err)
	}
	return &alert, nil
}

func (s *AlertService) GetByOwner(ownerID uint) (*models.Alert, error) {
	var alert models.Alert
	err := s.DB.Where("owner_id = ?", ownerID).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("No alert found. Please create an alert first.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Something went wrong", err)
	}
	return &alert, nil
}

func (s *AlertService) DeleteByOwner(ownerID uint) error {
	result := s.DB.Where("owner_id = ?", ownerID).Delete(&models.Alert{})
	if result.Error != nil {
		return apperrors.Internal("Something went wrong", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Alert not found. Nothing to delete.", nil)
	}
	return nil
}
