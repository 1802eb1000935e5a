package services

import (
	"errors"
	"strings"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply records one application per (job, applicant) pair. The uniqueness is
// an existence check followed by an insert with no transaction: two racing
// identical applies can both pass the check. Accepted; sequential duplicates
// are rejected.
func (s *ApplicationService) Apply(jobID, applicantID uint) error {
	var existing models.Application
	err := s.DB.Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(&existing).Error
	if err == nil {
		return apperrors.Conflict("You have already applied for this job.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Internal("An error occurred while applying for the job.", err)
	}

	var job models.Job
	err = s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Job not found.", nil)
	}
	if err != nil {
		return apperrors.Internal("An error occurred while applying for the job.", err)
	}

	application := models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.DB.Create(&application).Error; err != nil {
		return apperrors.Internal("An error occurred while applying for the job.", err)
	}
	return nil
}

func (s *ApplicationService) ListByApplicant(applicantID uint) ([]models.Application, error) {
	var applications []models.Application
	err := s.DB.Where("applicant_id = ?", applicantID).
		Preload("Job").
		Preload("Job.Company").
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Internal("An error occurred while fetching applied jobs.", err)
	}
	if len(applications) == 0 {
		return nil, apperrors.NotFound("No applications found.", nil)
	}
	return applications, nil
}

// Applicant is the recruiter-facing view of one application.
type Applicant struct {
	Applicant models.Student `json:"applicant"`
	Status    string         `json:"status"`
}

func (s *ApplicationService) Applicants(jobID uint) (*models.Job, []Applicant, error) {
	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperrors.NotFound("Job not found.", nil)
	}
	if err != nil {
		return nil, nil, apperrors.Internal("Error fetching applicants.", err)
	}

	var applications []models.Application
	err = s.DB.Where("job_id = ?", jobID).
		Preload("Applicant").
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, nil, apperrors.Internal("Error fetching applicants.", err)
	}

	applicants := make([]Applicant, 0, len(applications))
	for _, application := range applications {
		applicants = append(applicants, Applicant{
			Applicant: application.Applicant,
			Status:    application.Status,
		})
	}
	return &job, applicants, nil
}

// UpdateStatus stores the status lower-cased, as the original does.
func (s *ApplicationService) UpdateStatus(applicationID uint, status string) error {
	var application models.Application
	err := s.DB.First(&application, applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Application not found.", nil)
	}
	if err != nil {
		return apperrors.Internal("An error occurred while updating the status.", err)
	}

	application.Status = strings.ToLower(status)
	if err := s.DB.Save(&application).Error; err != nil {
		return apperrors.Internal("An error occurred while updating the status.", err)
	}
	return nil
}
