package services_test

import (
	"testing"

	"github.com/hireloop/hireloop-backend/internal/apperrors"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/services"
)

func TestOneAlertPerOwner(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "owner@example.com", nil)

	svc := services.NewAlertService(db)
	req := &dtos.AlertCreateRequest{
		Role:      "Engineer",
		Location:  "Remote",
		MinSalary: 50000,
		MaxSalary: 90000,
	}

	if _, err := svc.Create(student.ID, req); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(student.ID, req)
	if err == nil {
		t.Fatal("second Create succeeded, want Conflict")
	}
	if apperrors.AsDomain(err).Type != apperrors.ErrTypeConflict {
		t.Errorf("error type = %s, want CONFLICT", apperrors.AsDomain(err).Type)
	}
}

func TestAlertGetAndDeleteByOwner(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "owner@example.com", nil)

	svc := services.NewAlertService(db)

	if _, err := svc.GetByOwner(student.ID); err == nil {
		t.Error("GetByOwner before create succeeded, want NotFound")
	}

	created, err := svc.Create(student.ID, &dtos.AlertCreateRequest{
		Role:      "Engineer",
		Location:  "Remote",
		MaxSalary: 90000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	alert, err := svc.GetByOwner(student.ID)
	if err != nil {
		t.Fatalf("GetByOwner: %v", err)
	}
	if alert.ID != created.ID {
		t.Errorf("GetByOwner returned alert %d, want %d", alert.ID, created.ID)
	}

	if err := svc.DeleteByOwner(student.ID); err != nil {
		t.Fatalf("DeleteByOwner: %v", err)
	}
	if err := svc.DeleteByOwner(student.ID); err == nil {
		t.Error("second DeleteByOwner succeeded, want NotFound")
	}
}
