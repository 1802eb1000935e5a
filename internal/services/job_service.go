package services

import (
	"errors"
	"strings"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create resolves the recruiter's company and stores the job. The returned
// job has its company association filled so the alert matcher can render
// notifications from the snapshot without another read.
func (s *JobService) Create(recruiterID uint, req *dtos.JobPostRequest) (*models.Job, error) {
	var company models.Company
	err := s.DB.Where("user_id = ?", recruiterID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.InvalidInput("Register a company before posting jobs.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Error posting the job.", err)
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    splitRequirements(req.Requirements),
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.Experience,
		Position:        req.Position,
		CompanyID:       company.ID,
		CreatedBy:       recruiterID,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, apperrors.Internal("Error posting the job.", err)
	}

	job.Company = company
	return job, nil
}

func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	requirements := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			requirements = append(requirements, trimmed)
		}
	}
	return requirements
}

// List applies the student-side search filters with pagination, newest
// first. The keyword matches title or description case-insensitively.
func (s *JobService) List(q *dtos.JobListQuery) ([]models.Job, int64, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	// LOWER on both sides keeps the match case-insensitive on Postgres and
	// sqlite alike.
	query := s.DB.Model(&models.Job{})
	if q.Keyword != "" {
		pattern := "%" + strings.ToLower(q.Keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if q.JobType != "" {
		query = query.Where("job_type = ?", q.JobType)
	}
	if q.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(q.Location)+"%")
	}
	if q.MinSalary > 0 {
		query = query.Where("salary >= ?", q.MinSalary)
	}
	if q.MaxSalary > 0 {
		query = query.Where("salary <= ?", q.MaxSalary)
	}
	if q.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", q.ExperienceLevel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("Error fetching jobs", err)
	}

	var jobs []models.Job
	err := query.Preload("Company").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, apperrors.Internal("Error fetching jobs", err)
	}
	return jobs, total, nil
}

func (s *JobService) ListByRecruiter(recruiterID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("created_by = ?", recruiterID).
		Preload("Company").
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("Error fetching jobs.", err)
	}
	if len(jobs) == 0 {
		return nil, apperrors.NotFound("Jobs not found.", nil)
	}
	return jobs, nil
}

func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Company").Preload("Applications").First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Internal server error.", err)
	}
	return &job, nil
}

// MarkViewed appends the job to the student's viewed list once.
func (s *JobService) MarkViewed(studentID, jobID uint) error {
	var student models.Student
	err := s.DB.Preload("ViewedJobs").First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Student not found.", nil)
	}
	if err != nil {
		return apperrors.Internal("Internal server error.", err)
	}

	for _, viewed := range student.ViewedJobs {
		if viewed.ID == jobID {
			return nil
		}
	}
	err = s.DB.Model(&student).Association("ViewedJobs").Append(&models.Job{ID: jobID})
	if err != nil {
		return apperrors.Internal("Internal server error.", err)
	}
	return nil
}

func (s *JobService) SaveJob(studentID, jobID uint) error {
	if _, err := s.GetByID(jobID); err != nil {
		return err
	}

	var student models.Student
	err := s.DB.Preload("SavedJobs").First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("User not found.", nil)
	}
	if err != nil {
		return apperrors.Internal("Internal server error.", err)
	}

	for _, saved := range student.SavedJobs {
		if saved.ID == jobID {
			return nil
		}
	}
	err = s.DB.Model(&student).Association("SavedJobs").Append(&models.Job{ID: jobID})
	if err != nil {
		return apperrors.Internal("Internal server error.", err)
	}
	return nil
}

func (s *JobService) RemoveSavedJob(studentID, jobID uint) error {
	if _, err := s.GetByID(jobID); err != nil {
		return err
	}

	var student models.Student
	err := s.DB.First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("User not found.", nil)
	}
	if err != nil {
		return apperrors.Internal("Internal server error.", err)
	}

	err = s.DB.Model(&student).Association("SavedJobs").Delete(&models.Job{ID: jobID})
	if err != nil {
		return apperrors.Internal("Internal server error.", err)
	}
	return nil
}

func (s *JobService) SavedJobs(studentID uint) ([]models.Job, error) {
	var student models.Student
	err := s.DB.Preload("SavedJobs").Preload("SavedJobs.Company").First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Internal server error.", err)
	}
	return student.SavedJobs, nil
}

func (s *JobService) Delete(id uint) error {
	result := s.DB.Delete(&models.Job{}, id)
	if result.Error != nil {
		return apperrors.Internal("An error occurred while trying to delete the job.", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Job not found or already deleted.", nil)
	}
	return nil
}
