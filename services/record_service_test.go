package services

import (
	"testing"
	"time"

	"github.com/ITECH-Group8/WellLog/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestAddStepsUpsertsByDate(t *testing.T) {
	svc := NewRecordService(newTestDB(t))
	day := date(2026, 3, 10)

	if err := svc.AddSteps(&models.StepsRecord{UserID: 1, Date: day, StepsCount: 5000}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddSteps(&models.StepsRecord{UserID: 1, Date: day, StepsCount: 8000}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	records, err := svc.StepsHistory(1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (same-day add should replace)", len(records))
	}
	if records[0].StepsCount != 8000 {
		t.Errorf("StepsCount = %d, want 8000", records[0].StepsCount)
	}
}

func TestAddStepsSeparateUsersAndDates(t *testing.T) {
	svc := NewRecordService(newTestDB(t))

	if err := svc.AddSteps(&models.StepsRecord{UserID: 1, Date: date(2026, 3, 10), StepsCount: 5000}); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddSteps(&models.StepsRecord{UserID: 1, Date: date(2026, 3, 11), StepsCount: 6000}); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddSteps(&models.StepsRecord{UserID: 2, Date: date(2026, 3, 10), StepsCount: 7000}); err != nil {
		t.Fatal(err)
	}

	records, err := svc.StepsHistory(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("user 1 got %d records, want 2", len(records))
	}
	// newest first
	if !records[0].Date.After(records[1].Date) {
		t.Errorf("history not ordered newest-first: %v before %v", records[0].Date, records[1].Date)
	}
}

func TestStepsSinceExcludesOlderDates(t *testing.T) {
	svc := NewRecordService(newTestDB(t))

	for i, day := range []time.Time{date(2026, 3, 1), date(2026, 3, 5), date(2026, 3, 9)} {
		if err := svc.AddSteps(&models.StepsRecord{UserID: 1, Date: day, StepsCount: 1000 * (i + 1)}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := svc.StepsSince(1, date(2026, 3, 5))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (cutoff is inclusive, older excluded)", len(records))
	}
	for _, r := range records {
		if r.Date.Before(date(2026, 3, 5)) {
			t.Errorf("record dated %v leaked past the cutoff", r.Date)
		}
	}
}

func TestAddTrainingAllowsMultiplePerDay(t *testing.T) {
	svc := NewRecordService(newTestDB(t))
	day := date(2026, 3, 10)

	for _, ex := range []string{"squat", "bench press"} {
		if err := svc.AddTraining(&models.TrainingRecord{UserID: 1, Date: day, ExerciseType: ex}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := svc.TrainingHistory(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d training records, want 2", len(records))
	}
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	svc := NewRecordService(newTestDB(t))

	record := models.StepsRecord{UserID: 1, Date: date(2026, 3, 10), StepsCount: 5000}
	if err := svc.AddSteps(&record); err != nil {
		t.Fatal(err)
	}

	// another user cannot touch it
	if err := svc.UpdateSteps(2, record.ID, &models.StepsRecord{Date: record.Date, StepsCount: 1}); err != ErrRecordNotFound {
		t.Errorf("update by non-owner: err = %v, want ErrRecordNotFound", err)
	}
	if err := svc.DeleteSteps(2, record.ID); err != ErrRecordNotFound {
		t.Errorf("delete by non-owner: err = %v, want ErrRecordNotFound", err)
	}

	if err := svc.UpdateSteps(1, record.ID, &models.StepsRecord{Date: record.Date, StepsCount: 9000}); err != nil {
		t.Fatalf("update by owner: %v", err)
	}
	records, _ := svc.StepsHistory(1)
	if len(records) != 1 || records[0].StepsCount != 9000 {
		t.Fatalf("after update: %+v", records)
	}

	if err := svc.DeleteSteps(1, record.ID); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if err := svc.DeleteSteps(1, record.ID); err != ErrRecordNotFound {
		t.Errorf("second delete: err = %v, want ErrRecordNotFound", err)
	}
}

func TestGoalUpsertKeepsSingleRow(t *testing.T) {
	svc := NewRecordService(newTestDB(t))

	goal, err := svc.Goal(1)
	if err != nil {
		t.Fatal(err)
	}
	if goal != nil {
		t.Fatalf("expected nil goal before any upsert, got %+v", goal)
	}

	steps := 10000
	if err := svc.UpsertGoal(1, &models.HealthGoal{DailyStepsGoal: &steps}); err != nil {
		t.Fatal(err)
	}

	weight := 72.5
	if err := svc.UpsertGoal(1, &models.HealthGoal{TargetWeight: &weight}); err != nil {
		t.Fatal(err)
	}

	var count int64
	svc.DB().Model(&models.HealthGoal{}).Where("user_id = ?", 1).Count(&count)
	if count != 1 {
		t.Fatalf("got %d goal rows, want 1", count)
	}

	goal, err = svc.Goal(1)
	if err != nil {
		t.Fatal(err)
	}
	if goal.TargetWeight == nil || *goal.TargetWeight != 72.5 {
		t.Errorf("TargetWeight = %v, want 72.5", goal.TargetWeight)
	}
	// second upsert replaced the whole row
	if goal.DailyStepsGoal != nil {
		t.Errorf("DailyStepsGoal = %v, want nil after replacement", *goal.DailyStepsGoal)
	}
}
