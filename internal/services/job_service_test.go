package services_test

import (
	"testing"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/models"
	"github.com/hireloop/hireloop-backend/internal/services"
)

func TestJobCreateRequiresCompany(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewJobService(db)

	_, err := svc.Create(1, &dtos.JobPostRequest{
		Title:        "Engineer",
		Description:  "Build things",
		Requirements: "go, sql",
		Salary:       70000,
		Location:     "Remote",
		JobType:      "full-time",
		Experience:   "mid",
		Position:     2,
	})
	if err == nil {
		t.Fatal("Create without a registered company succeeded")
	}
	if apperrors.AsDomain(err).Type != apperrors.ErrTypeInvalidInput {
		t.Errorf("error type = %s, want INVALID_INPUT", apperrors.AsDomain(err).Type)
	}
}

func TestJobCreateFillsCompanySnapshot(t *testing.T) {
	db := newTestDB(t)
	company := models.Company{Name: "Acme", UserID: 7}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}

	svc := services.NewJobService(db)
	job, err := svc.Create(7, &dtos.JobPostRequest{
		Title:        "Engineer",
		Description:  "Build things",
		Requirements: "go, sql, ",
		Salary:       70000,
		Location:     "Remote",
		JobType:      "full-time",
		Experience:   "mid",
		Position:     2,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if job.Company.Name != "Acme" {
		t.Errorf("company snapshot = %q, want Acme", job.Company.Name)
	}
	if len(job.Requirements) != 2 {
		t.Errorf("requirements = %v, want the two non-empty entries", job.Requirements)
	}
	if job.CreatedBy != 7 {
		t.Errorf("created_by = %d, want 7", job.CreatedBy)
	}
}

func TestSaveJobIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "saver@example.com", nil)
	job := seedJob(t, db, "Engineer")

	svc := services.NewJobService(db)
	if err := svc.SaveJob(student.ID, job.ID); err != nil {
		t.Fatalf("first SaveJob: %v", err)
	}
	if err := svc.SaveJob(student.ID, job.ID); err != nil {
		t.Fatalf("second SaveJob: %v", err)
	}

	saved, err := svc.SavedJobs(student.ID)
	if err != nil {
		t.Fatalf("SavedJobs: %v", err)
	}
	if len(saved) != 1 {
		t.Errorf("saved jobs = %d, want 1", len(saved))
	}
}

func TestJobListFilters(t *testing.T) {
	db := newTestDB(t)
	jobs := []models.Job{
		{Title: "Engineer", Description: "Backend services", Location: "Remote", Salary: 70000, JobType: "full-time"},
		{Title: "Designer", Description: "Product design", Location: "Berlin", Salary: 60000, JobType: "full-time"},
		{Title: "Engineer", Description: "Frontend", Location: "Remote", Salary: 120000, JobType: "contract"},
	}
	for i := range jobs {
		if err := db.Create(&jobs[i]).Error; err != nil {
			t.Fatalf("seed job: %v", err)
		}
	}

	svc := services.NewJobService(db)

	got, total, err := svc.List(&dtos.JobListQuery{Keyword: "Engineer", MaxSalary: 100000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(got) != 1 {
		t.Fatalf("total = %d, len = %d, want 1 matching job", total, len(got))
	}
	if got[0].Salary != 70000 {
		t.Errorf("matched job salary = %v, want 70000", got[0].Salary)
	}
}

func TestJobListKeywordIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	job := models.Job{Title: "Engineer", Description: "Backend Services", Location: "Remote", Salary: 70000}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}

	svc := services.NewJobService(db)

	for _, keyword := range []string{"engineer", "ENGINEER", "Engineer"} {
		got, total, err := svc.List(&dtos.JobListQuery{Keyword: keyword})
		if err != nil {
			t.Fatalf("List(%q): %v", keyword, err)
		}
		if total != 1 || len(got) != 1 {
			t.Errorf("List(%q) matched %d jobs, want 1", keyword, len(got))
		}
	}

	got, _, err := svc.List(&dtos.JobListQuery{Keyword: "services", Location: "remote"})
	if err != nil {
		t.Fatalf("List with location filter: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("mixed-case description/location search matched %d jobs, want 1", len(got))
	}
}
