package services_test

import (
	"testing"

	"github.com/hireloop/hireloop-backend/internal/services"
)

func TestRecommendationsEmptyForStudentWithoutSkills(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "noskills@example.com", nil)

	other := seedStudent(t, db, "other@example.com", []string{"go"})
	job := seedJob(t, db, "Engineer")
	if err := db.Model(&other).Association("SavedJobs").Append(&job); err != nil {
		t.Fatalf("save job for other: %v", err)
	}

	svc := services.NewRecommendationService(db)
	jobs, err := svc.RecommendedJobs(student.ID)
	if err != nil {
		t.Fatalf("RecommendedJobs: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("got %d jobs for skill-less student, want 0", len(jobs))
	}
}

func TestRecommendationsDeduplicate(t *testing.T) {
	db := newTestDB(t)
	student := seedStudent(t, db, "me@example.com", []string{"go", "sql"})

	shared := seedJob(t, db, "Engineer")
	onlySaved := seedJob(t, db, "Analyst")

	// Two peers share a skill; both interacted with the same job, one of
	// them through both saved and viewed lists.
	peerA := seedStudent(t, db, "a@example.com", []string{"go"})
	if err := db.Model(&peerA).Association("SavedJobs").Append(&shared); err != nil {
		t.Fatalf("seed saved: %v", err)
	}
	if err := db.Model(&peerA).Association("ViewedJobs").Append(&shared); err != nil {
		t.Fatalf("seed viewed: %v", err)
	}
	peerB := seedStudent(t, db, "b@example.com", []string{"sql"})
	if err := db.Model(&peerB).Association("SavedJobs").Append(&shared); err != nil {
		t.Fatalf("seed saved: %v", err)
	}
	if err := db.Model(&peerB).Association("SavedJobs").Append(&onlySaved); err != nil {
		t.Fatalf("seed saved: %v", err)
	}

	// A peer with no common skill; their jobs must not show up.
	stranger := seedStudent(t, db, "stranger@example.com", []string{"cobol"})
	strangerJob := seedJob(t, db, "Archivist")
	if err := db.Model(&stranger).Association("SavedJobs").Append(&strangerJob); err != nil {
		t.Fatalf("seed saved: %v", err)
	}

	svc := services.NewRecommendationService(db)
	jobs, err := svc.RecommendedJobs(student.ID)
	if err != nil {
		t.Fatalf("RecommendedJobs: %v", err)
	}

	seen := make(map[uint]int)
	for _, job := range jobs {
		seen[job.ID]++
	}
	for id, count := range seen {
		if count > 1 {
			t.Errorf("job %d appears %d times, want once", id, count)
		}
	}
	if _, ok := seen[shared.ID]; !ok {
		t.Error("shared job missing from recommendations")
	}
	if _, ok := seen[onlySaved.ID]; !ok {
		t.Error("peer's saved job missing from recommendations")
	}
	if _, ok := seen[strangerJob.ID]; ok {
		t.Error("job from student with no common skill was recommended")
	}
}
