package services

import (
	"fmt"
	"math"

	"github.com/ITECH-Group8/WellLog/models"
)

// HealthStats are the derived figures fed into the advice prompt,
// computed over the trailing aggregation window.
type HealthStats struct {
	AvgSteps           int     // floor of mean
	AvgSleepHours      float64 // 1 decimal
	AvgRunningDistance float64 // km, 1 decimal
	AvgRunningPace     float64 // min/km, 1 decimal; 0 when no distance
	RunningSessions    int
	TrainingSessions   int
	AvgCalories        int // floor of mean
	AvgProtein         float64
	ActiveDays         int
	PredominantMood    string

	LatestWeight *float64
	LatestHeight *float64
	LatestBMI    *float64

	StepsRecords int
	SleepRecords int
	DietRecords  int
}

// ComputeStats derives the prompt statistics from raw window records.
// Record slices are expected newest-first, as the aggregation queries
// return them.
func ComputeStats(
	running []models.RunningRecord,
	sleep []models.SleepRecord,
	steps []models.StepsRecord,
	diet []models.DietRecord,
	mood []models.MoodRecord,
	training []models.TrainingRecord,
	weight []models.WeightRecord,
) HealthStats {
	stats := HealthStats{
		PredominantMood:  "Not recorded",
		RunningSessions:  len(running),
		TrainingSessions: len(training),
		StepsRecords:     len(steps),
		SleepRecords:     len(sleep),
		DietRecords:      len(diet),
	}

	if len(steps) > 0 {
		total := 0
		for _, r := range steps {
			total += r.StepsCount
		}
		stats.AvgSteps = total / len(steps)
	}

	if len(sleep) > 0 {
		var hours, minutes float64
		for _, r := range sleep {
			hours += float64(r.Hours)
			minutes += float64(r.Minutes)
		}
		n := float64(len(sleep))
		stats.AvgSleepHours = round1(hours/n + minutes/n/60)
	}

	if len(running) > 0 {
		var distance float64
		var duration int
		for _, r := range running {
			distance += r.Distance
			duration += r.DurationMinutes
		}
		stats.AvgRunningDistance = round1(distance / float64(len(running)))
		if distance > 0 {
			stats.AvgRunningPace = round1(float64(duration) / distance)
		}
	}

	if len(diet) > 0 {
		calories := 0
		var protein float64
		proteinCount := 0
		for _, r := range diet {
			calories += r.Calories
			if r.Protein != nil {
				protein += *r.Protein
				proteinCount++
			}
		}
		stats.AvgCalories = calories / len(diet)
		if proteinCount > 0 {
			stats.AvgProtein = round1(protein / float64(proteinCount))
		}
	}

	// Active days: distinct dates with any running, steps or training entry.
	days := map[string]struct{}{}
	for _, r := range running {
		days[r.Date.Format("2006-01-02")] = struct{}{}
	}
	for _, r := range steps {
		days[r.Date.Format("2006-01-02")] = struct{}{}
	}
	for _, r := range training {
		days[r.Date.Format("2006-01-02")] = struct{}{}
	}
	stats.ActiveDays = len(days)

	if m := predominantMood(mood); m != "" {
		stats.PredominantMood = m
	}

	if len(weight) > 0 {
		latest := weight[0]
		w, h, bmi := latest.Weight, latest.Height, latest.BMI()
		stats.LatestWeight = &w
		stats.LatestHeight = &h
		stats.LatestBMI = &bmi
	}

	return stats
}

// predominantMood is the most frequent mood; earlier-seen moods win ties,
// matching the record order handed in.
func predominantMood(records []models.MoodRecord) string {
	counts := map[string]int{}
	var order []string
	for _, r := range records {
		if r.Mood == "" {
			continue
		}
		if _, seen := counts[r.Mood]; !seen {
			order = append(order, r.Mood)
		}
		counts[r.Mood]++
	}

	best := ""
	for _, mood := range order {
		if best == "" || counts[mood] > counts[best] {
			best = mood
		}
	}
	return best
}

// Achievements picks up to three headline statements in fixed priority
// order, topping up with generic recording streaks when fewer than two
// conditions hold.
func Achievements(stats HealthStats, goal *models.HealthGoal) []string {
	var out []string

	if stats.AvgSteps > 0 && goal != nil && goal.DailyStepsGoal != nil && stats.AvgSteps >= *goal.DailyStepsGoal {
		out = append(out, fmt.Sprintf("Hit your average step goal (%d steps/day)", stats.AvgSteps))
	}
	if stats.RunningSessions > 0 {
		out = append(out, fmt.Sprintf("Maintained a running habit (%d sessions)", stats.RunningSessions))
	}
	if stats.AvgSleepHours > 7 {
		out = append(out, fmt.Sprintf("Good sleep duration (%.1f hours/night on average)", stats.AvgSleepHours))
	}
	if stats.LatestWeight != nil && goal != nil && goal.TargetWeight != nil &&
		math.Abs(*stats.LatestWeight-*goal.TargetWeight) < 3 {
		out = append(out, fmt.Sprintf("Weight close to target (%.1f kg)", *stats.LatestWeight))
	}
	if stats.AvgCalories > 0 && goal != nil && goal.DailyCaloriesGoal != nil {
		out = append(out, "Kept up a consistent diet log")
	}
	if stats.ActiveDays >= 5 {
		out = append(out, fmt.Sprintf("Stayed active on %d days", stats.ActiveDays))
	}

	if len(out) < 2 {
		if stats.StepsRecords > 0 {
			out = append(out, "Consistently recording step data")
		}
		if stats.SleepRecords > 0 {
			out = append(out, "Consistently recording sleep data")
		}
		if stats.RunningSessions > 0 {
			out = append(out, "Sticking with running workouts")
		}
		if stats.TrainingSessions > 0 {
			out = append(out, "Sticking with strength training")
		}
	}

	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
