package services

import (
	"errors"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/auth"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RecruiterService struct {
	DB *gorm.DB
}

func NewRecruiterService(db *gorm.DB) *RecruiterService {
	return &RecruiterService{DB: db}
}

func (s *RecruiterService) Register(req *dtos.RecruiterRegisterRequest) error {
	var existing models.Recruiter
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return apperrors.Conflict("User already exists with this email.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("Server error. Please try again later.", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return apperrors.Internal("Server error. Please try again later.", err)
	}

	recruiter := models.Recruiter{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     string(auth.RoleRecruiter),
	}
	if err := s.DB.Create(&recruiter).Error; err != nil {
		return apperrors.Internal("Server error. Please try again later.", err)
	}
	return nil
}

func (s *RecruiterService) Authenticate(email, password string) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := s.DB.Where("email = ?", email).First(&recruiter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InvalidInput("Incorrect email or password.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(recruiter.Password), []byte(password)) != nil {
		return nil, apperrors.InvalidInput("Incorrect email or password.", nil)
	}
	return &recruiter, nil
}

func (s *RecruiterService) UpdateProfile(id uint, req *dtos.RecruiterProfileUpdateRequest) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := s.DB.First(&recruiter, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}

	if req.Name != "" {
		recruiter.Name = req.Name
	}
	if req.Email != "" {
		recruiter.Email = req.Email
	}

	if err := s.DB.Save(&recruiter).Error; err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	return &recruiter, nil
}
