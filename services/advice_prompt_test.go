package services

import (
	"strings"
	"testing"

	"github.com/ITECH-Group8/WellLog/models"
)

func TestBuildAdvicePromptPlaceholders(t *testing.T) {
	prompt := BuildAdvicePrompt(HealthStats{PredominantMood: "Not recorded"}, nil, nil, models.User{})

	for _, want := range []string{
		"weight target: Not set kg",
		"daily steps goal: Not set steps",
		"Age: Unknown",
		"Gender: Unknown",
		"BMI: Unknown",
		"Unknown kg from target",
		"Mood: Not recorded",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildAdvicePromptSections(t *testing.T) {
	prompt := BuildAdvicePrompt(HealthStats{}, nil, nil, models.User{})

	for _, section := range []string{
		"Goal Alignment:",
		"Activity Optimization:",
		"Diet & Recovery Strategy:",
		"Progress Tracking:",
		"User Data:",
		"Weekly Average:",
		"Recent Progress:",
	} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
}

func TestBuildAdvicePromptWithData(t *testing.T) {
	age := 30
	user := models.User{Age: &age, Gender: "female"}

	weight, height, bmi := 68.0, 165.0, 24.98
	goalWeight := 65.0
	goalSteps := 10000
	sleepH, sleepM := 7, 30
	goal := &models.HealthGoal{
		TargetWeight:          &goalWeight,
		DailyStepsGoal:        &goalSteps,
		DailySleepHoursGoal:   &sleepH,
		DailySleepMinutesGoal: &sleepM,
	}
	stats := HealthStats{
		AvgSteps:        8200,
		AvgSleepHours:   7.2,
		LatestWeight:    &weight,
		LatestHeight:    &height,
		LatestBMI:       &bmi,
		PredominantMood: "good",
		ActiveDays:      5,
	}

	prompt := BuildAdvicePrompt(stats, goal, []string{"Maintained a running habit (3 sessions)"}, user)

	for _, want := range []string{
		"Age: 30",
		"Gender: female",
		"weight target: 65.0 kg",
		"daily steps goal: 10000 steps",
		"sleep goal: 7h 30min",
		"Steps: 8200 steps/day",
		"BMI: 24.98",
		"+3.0 kg from target",
		"Active Days: 5/7",
		"Maintained a running habit (3 sessions)",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
