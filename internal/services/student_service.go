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

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func (s *StudentService) Register(req *dtos.StudentRegisterRequest) error {
	var existing models.Student
	err := s.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return apperrors.Conflict("User already exist with this email.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("Server error. Please try again later.", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return apperrors.Internal("Server error. Please try again later.", err)
	}

	student := models.Student{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashed),
		Role:        string(auth.RoleStudent),
	}
	if err := s.DB.Create(&student).Error; err != nil {
		return apperrors.Internal("Server error. Please try again later.", err)
	}
	return nil
}

// Authenticate checks the credentials and returns the student record. The
// original responds 400 (not 401) for bad credentials, kept here as
// InvalidInput.
func (s *StudentService) Authenticate(email, password string) (*models.Student, error) {
	var student models.Student
	err := s.DB.Where("email = ?", email).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InvalidInput("Incorrect email or password.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(password)) != nil {
		return nil, apperrors.InvalidInput("Incorrect email or password.", nil)
	}
	return &student, nil
}

func (s *StudentService) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	err := s.DB.First(&student, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	return &student, nil
}

// UpdateProfile applies only the fields the caller provided. resumePath and
// resumeName are already stored on disk by the handler.
func (s *StudentService) UpdateProfile(id uint, req *dtos.StudentProfileUpdateRequest, resumePath, resumeName string) (*models.Student, error) {
	student, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Fullname != "" {
		student.Fullname = req.Fullname
	}
	if req.Email != "" {
		student.Email = req.Email
	}
	if req.PhoneNumber != "" {
		student.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		student.Bio = req.Bio
	}
	if len(req.Skills) > 0 {
		student.Skills = req.Skills
	}
	if resumePath != "" {
		student.Resume = resumePath
		student.ResumeOriginalName = resumeName
	}

	if err := s.DB.Save(student).Error; err != nil {
		return nil, apperrors.Internal("Server error. Please try again later.", err)
	}
	return student, nil
}
