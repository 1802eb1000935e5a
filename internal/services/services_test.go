package services_test

import (
	"fmt"
	"testing"

	"github.com/hireloop/hireloop-backend/internal/database"
	"github.com/hireloop/hireloop-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, email string, skills []string) models.Student {
	t.Helper()
	student := models.Student{
		Fullname: "Student " + email,
		Email:    email,
		Password: "x",
		Role:     "student",
		Skills:   skills,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

func seedJob(t *testing.T, db *gorm.DB, title string) models.Job {
	t.Helper()
	job := models.Job{Title: title, Location: "Remote", Salary: 50000}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return job
}
