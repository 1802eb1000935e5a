package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Fullname    string `gorm:"not null" json:"fullname"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `gorm:"not null" json:"-"`
	Role        string `gorm:"not null" json:"role"`

	Bio                string   `json:"bio"`
	Skills             []string `gorm:"serializer:json" json:"skills"`
	Resume             string   `json:"resume"`
	ResumeOriginalName string   `json:"resume_original_name"`
	ProfilePhoto       string   `gorm:"default:'https://shorturl.at/lkcWa'" json:"profile_photo"`

	// GORM needs Preload() to fill these
	SavedJobs  []Job `gorm:"many2many:student_saved_jobs" json:"saved_jobs,omitempty"`
	ViewedJobs []Job `gorm:"many2many:student_viewed_jobs" json:"viewed_jobs,omitempty"`
}

type Recruiter struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	CompanyName string `json:"company_name"`
	Role        string `gorm:"not null" json:"role"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	UserID      uint   `gorm:"index" json:"user_id"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Company -> Jobs -> ...
	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title           string   `gorm:"not null" json:"title"`
	Description     string   `gorm:"type:text" json:"description"`
	Requirements    []string `gorm:"serializer:json" json:"requirements"`
	Salary          float64  `json:"salary"`
	Location        string   `json:"location"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	Position        int      `json:"position"`

	CompanyID uint    `json:"company_id"`
	Company   Company `json:"company"`
	CreatedBy uint    `gorm:"index" json:"created_by"`

	Applications []Application `json:"applications,omitempty"`
}

const ApplicationStatusPending = "pending"

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID       uint    `gorm:"index" json:"job_id"`
	Job         Job     `json:"job"`
	ApplicantID uint    `gorm:"index" json:"applicant_id"`
	Applicant   Student `json:"applicant"`
	Status      string  `gorm:"default:'pending'" json:"status"`
}

// Alert is a student's standing query over future job postings. The unique
// index on OwnerID enforces one alert per owner at the store layer.
type Alert struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID      uint     `gorm:"uniqueIndex" json:"owner_id"`
	Owner        Student  `gorm:"foreignKey:OwnerID" json:"-"`
	Role         string   `json:"role"`
	Requirements []string `gorm:"serializer:json" json:"requirements"`
	MinSalary    float64  `json:"min_salary"`
	MaxSalary    float64  `json:"max_salary"`
	Location     string   `json:"location"`
}
