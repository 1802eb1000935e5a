package services

import (
	"errors"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/models"
	"gorm.io/gorm"
)

type RecommendationService struct {
	DB *gorm.DB
}

func NewRecommendationService(db *gorm.DB) *RecommendationService {
	return &RecommendationService{DB: db}
}

// RecommendedJobs suggests jobs that students sharing at least one skill
// with the given student have saved or viewed. Presence in the union is
// binary; there is no ranking. An empty skill list short-circuits to an
// empty result.
func (s *RecommendationService) RecommendedJobs(studentID uint) ([]models.Job, error) {
	var student models.Student
	err := s.DB.First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found.", nil)
	}
	if err != nil {
		return nil, apperrors.Internal("Internal server error.", err)
	}

	if len(student.Skills) == 0 {
		return nil, nil
	}

	// Skills live JSON-serialized in one column, so the overlap check runs
	// in process over all other students.
	var others []models.Student
	err = s.DB.Preload("SavedJobs").Preload("ViewedJobs").
		Where("id <> ?", studentID).
		Find(&others).Error
	if err != nil {
		return nil, apperrors.Internal("Internal server error.", err)
	}

	ownSkills := make(map[string]struct{}, len(student.Skills))
	for _, skill := range student.Skills {
		ownSkills[skill] = struct{}{}
	}

	seen := make(map[uint]struct{})
	var recommended []models.Job
	for _, other := range others {
		if !sharesSkill(ownSkills, other.Skills) {
			continue
		}
		for _, job := range append(other.SavedJobs, other.ViewedJobs...) {
			if _, dup := seen[job.ID]; dup {
				continue
			}
			seen[job.ID] = struct{}{}
			recommended = append(recommended, job)
		}
	}
	return recommended, nil
}

func sharesSkill(ownSkills map[string]struct{}, skills []string) bool {
	for _, skill := range skills {
		if _, ok := ownSkills[skill]; ok {
			return true
		}
	}
	return false
}
