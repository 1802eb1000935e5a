package services_test

import (
	"testing"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/models"
	"github.com/hireloop/hireloop-backend/internal/services"
)

func TestApplyTwiceIsRejected(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "applicant@example.com", nil)
	job := seedJob(t, db, "Engineer")

	svc := services.NewApplicationService(db)

	if err := svc.Apply(job.ID, student.ID); err != nil {
		t.Fatalf("first Apply returned unexpected error: %v", err)
	}

	err := svc.Apply(job.ID, student.ID)
	if err == nil {
		t.Fatal("second Apply succeeded, want Conflict")
	}
	if apperrors.AsDomain(err).Type != apperrors.ErrTypeConflict {
		t.Errorf("second Apply error type = %s, want CONFLICT", apperrors.AsDomain(err).Type)
	}
}

func TestApplyMissingJob(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "applicant@example.com", nil)

	svc := services.NewApplicationService(db)

	err := svc.Apply(999, student.ID)
	if err == nil {
		t.Fatal("Apply on missing job succeeded")
	}
	if apperrors.AsDomain(err).Type != apperrors.ErrTypeNotFound {
		t.Errorf("error type = %s, want NOT_FOUND", apperrors.AsDomain(err).Type)
	}
}

func TestApplyDefaultsStatusToPending(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "applicant@example.com", nil)
	job := seedJob(t, db, "Engineer")

	svc := services.NewApplicationService(db)
	if err := svc.Apply(job.ID, student.ID); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	var application models.Application
	if err := db.First(&application).Error; err != nil {
		t.Fatalf("load application: %v", err)
	}
	if application.Status != models.ApplicationStatusPending {
		t.Errorf("status = %q, want %q", application.Status, models.ApplicationStatusPending)
	}
}

func TestUpdateStatusLowercases(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "applicant@example.com", nil)
	job := seedJob(t, db, "Engineer")

	svc := services.NewApplicationService(db)
	if err := svc.Apply(job.ID, student.ID); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	var application models.Application
	if err := db.First(&application).Error; err != nil {
		t.Fatalf("load application: %v", err)
	}

	if err := svc.UpdateStatus(application.ID, "ACCEPTED"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	if err := db.First(&application, application.ID).Error; err != nil {
		t.Fatalf("reload application: %v", err)
	}
	if application.Status != "accepted" {
		t.Errorf("status = %q, want %q", application.Status, "accepted")
	}
}
