package dtos

type JobPostRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements" binding:"required"` // comma separated
	Salary       float64 `json:"salary" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	JobType      string  `json:"job_type" binding:"required"`
	Experience   string  `json:"experience" binding:"required"`
	Position     int     `json:"position" binding:"required"`
}

// JobListQuery carries the student-side search filters. Zero values mean
// "no filter"; page and limit get defaults in the handler.
type JobListQuery struct {
	Keyword         string  `form:"keyword"`
	JobType         string  `form:"jobType"`
	Location        string  `form:"location"`
	MinSalary       float64 `form:"minSalary"`
	MaxSalary       float64 `form:"maxSalary"`
	ExperienceLevel string  `form:"experienceLevel"`
	Page            int     `form:"page"`
	Limit           int     `form:"limit"`
}
