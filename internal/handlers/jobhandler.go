package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/auth"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/models"
	"github.com/hireloop/hireloop-backend/internal/notify"
	"github.com/hireloop/hireloop-backend/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
	Matcher    *notify.AlertMatcher
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, matcher *notify.AlertMatcher) *JobHandler {
	return &JobHandler{
		JobService: j,
		Matcher:    matcher,
	}
}

// Post is the recruiter's POST /job/post endpoint. The alert fan-out runs on
// a detached goroutine against the creation-time snapshot: later edits to
// the job do not re-trigger alerts, and matcher failures never reach the
// response.
func (h *JobHandler) Post(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req dtos.JobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing.", "success": false})
		return
	}

	job, err := h.JobService.Create(identity.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	snapshot := *job
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		h.Matcher.Run(ctx, snapshot)
	}()

	c.JSON(http.StatusCreated, gin.H{
		"message": "New job created successfully.",
		"job":     job,
		"success": true,
	})
}

// List is the student-facing search with filters and pagination.
func (h *JobHandler) List(c *gin.Context) {
	var query dtos.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query.", "success": false})
		return
	}

	jobs, total, err := h.JobService.List(&query)
	if err != nil {
		respondError(c, err)
		return
	}

	limit := query.Limit
	if limit < 1 {
		limit = 10
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":        jobs,
		"totalJobs":   total,
		"currentPage": page,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"success":     true,
	})
}

// ListMine returns the jobs posted by the authenticated recruiter.
func (h *JobHandler) ListMine(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	jobs, err := h.JobService.ListByRecruiter(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":    jobs,
		"success": true,
	})
}

// Get returns one job. Students get a trimmed view without applications and
// the job is recorded in their viewed list; recruiters get the full record.
func (h *JobHandler) Get(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	job, err := h.JobService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if identity.Role == auth.RoleStudent {
		if err := h.JobService.MarkViewed(identity.UserID, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"job":     studentJobView(job),
			"success": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":     job,
		"success": true,
	})
}

func (h *JobHandler) Save(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	if err := h.JobService.SaveJob(identity.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job saved successfully.",
		"success": true,
	})
}

func (h *JobHandler) RemoveSaved(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	if err := h.JobService.RemoveSavedJob(identity.UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job removed from saved jobs.",
		"success": true,
	})
}

func (h *JobHandler) ListSaved(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	jobs, err := h.JobService.SavedJobs(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"savedJobs": jobs,
		"success":   true,
	})
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	if err := h.JobService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully.",
		"success": true,
	})
}

// studentJobView trims the applications list off the job payload.
func studentJobView(job *models.Job) gin.H {
	return gin.H{
		"title":            job.Title,
		"description":      job.Description,
		"requirements":     job.Requirements,
		"salary":           job.Salary,
		"experience_level": job.ExperienceLevel,
		"location":         job.Location,
		"job_type":         job.JobType,
		"position":         job.Position,
		"company":          job.Company,
		"created_by":       job.CreatedBy,
	}
}
