package services

import (
	"errors"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// Register creates a company owned by the recruiter and stamps the
// recruiter's companyName. Name uniqueness is case-insensitive.
func (s *CompanyService) Register(userID uint, name string) (*models.Company, error) {
	var existing models.Company
	err := s.DB.Where("LOWER(name) = LOWER(?)", name).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("You can't register the same company.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}

	company := models.Company{Name: name, UserID: userID}
	if err := s.DB.Create(&company).Error; err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}

	err = s.DB.Model(&models.Recruiter{}).Where("id = ?", userID).
		Update("company_name", company.Name).Error
	if err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	return &company, nil
}

func (s *CompanyService) ListByUser(userID uint) ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.Where("user_id = ?", userID).Find(&companies).Error; err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	if len(companies) == 0 {
		return nil, apperrors.NotFound("No companies found for this user.", nil)
	}
	return companies, nil
}

func (s *CompanyService) GetByID(id uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.First(&company, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Company not found.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	return &company, nil
}

func (s *CompanyService) Update(id uint, req *dtos.CompanyUpdateRequest, logoPath string) (*models.Company, error) {
	company, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Location != "" {
		company.Location = req.Location
	}
	if logoPath != "" {
		company.Logo = logoPath
	}

	if err := s.DB.Save(company).Error; err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	return company, nil
}

func (s *CompanyService) Delete(id uint) error {
	result := s.DB.Delete(&models.Company{}, id)
	if result.Error != nil {
		return apperrors.Internal("An error occurred while trying to delete the company.", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Company not found or already deleted.", nil)
	}
	return nil
}
