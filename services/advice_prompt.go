package services

import (
	"fmt"
	"strings"

	"github.com/ITECH-Group8/WellLog/models"
)

const adviceSystemMessage = "You are a health and fitness advisor with expertise in analyzing health data patterns and providing personalized recommendations."

// BuildAdvicePrompt renders the fixed prompt template from the window
// statistics, the user's goals and demographics. Absent values render as
// "Not set" / "Unknown"; it always returns a usable prompt.
func BuildAdvicePrompt(stats HealthStats, goal *models.HealthGoal, achievements []string, user models.User) string {
	weightTarget := "Not set"
	stepsTarget := "Not set"
	sleepTarget := "Not set"
	runningDistanceGoal := "Not set"
	trainingSessionsGoal := "Not set"
	caloriesGoal := "Not set"
	weightDiff := "Unknown"

	if goal != nil {
		if goal.TargetWeight != nil {
			weightTarget = fmt.Sprintf("%.1f", *goal.TargetWeight)
			if stats.LatestWeight != nil {
				diff := *stats.LatestWeight - *goal.TargetWeight
				weightDiff = fmt.Sprintf("%+.1f", diff)
			}
		}
		if goal.DailyStepsGoal != nil {
			stepsTarget = fmt.Sprintf("%d", *goal.DailyStepsGoal)
		}
		if goal.DailySleepHoursGoal != nil {
			minutes := 0
			if goal.DailySleepMinutesGoal != nil {
				minutes = *goal.DailySleepMinutesGoal
			}
			sleepTarget = fmt.Sprintf("%dh %dmin", *goal.DailySleepHoursGoal, minutes)
		}
		if goal.WeeklyRunningDistanceGoal != nil {
			runningDistanceGoal = fmt.Sprintf("%.1f", *goal.WeeklyRunningDistanceGoal)
		}
		if goal.WeeklyTrainingSessionsGoal != nil {
			trainingSessionsGoal = fmt.Sprintf("%d", *goal.WeeklyTrainingSessionsGoal)
		}
		if goal.DailyCaloriesGoal != nil {
			caloriesGoal = fmt.Sprintf("%d", *goal.DailyCaloriesGoal)
		}
	}

	age := "Unknown"
	if user.Age != nil {
		age = fmt.Sprintf("%d", *user.Age)
	}
	gender := user.Gender
	if gender == "" {
		gender = "Unknown"
	}

	height := "Unknown"
	latestWeight := "Unknown"
	bmi := "Unknown"
	if stats.LatestHeight != nil {
		height = fmt.Sprintf("%.1f", *stats.LatestHeight)
	}
	if stats.LatestWeight != nil {
		latestWeight = fmt.Sprintf("%.1f", *stats.LatestWeight)
	}
	if stats.LatestBMI != nil {
		bmi = fmt.Sprintf("%.2f", *stats.LatestBMI)
	}

	achievementsText := strings.Join(achievements, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a personalized fitness recommendation based on the following user data in 200-300 English words. Structure it in 2-3 cohesive paragraphs without any markdown formatting.\n\n")
	fmt.Fprintf(&b, "Begin by positively acknowledging their recent achievements in %s. Then provide specific suggestions addressing these key areas:\n\n", achievementsText)
	fmt.Fprintf(&b, "Goal Alignment: Current goals are weight target: %s kg, daily steps goal: %s steps, sleep goal: %s, weekly running distance goal: %s km, weekly training sessions goal: %s, suggest incremental improvements based on their height: %s cm, weight: %s kg, and consistency.\n\n",
		weightTarget, stepsTarget, sleepTarget, runningDistanceGoal, trainingSessionsGoal, height, latestWeight)
	fmt.Fprintf(&b, "Activity Optimization: Recommend exercise types/duration considering their running sessions: %d per week, running pace: %.1f min/km, training sessions: %d per week.\n\n",
		stats.RunningSessions, stats.AvgRunningPace, stats.TrainingSessions)
	fmt.Fprintf(&b, "Diet & Recovery Strategy: Address sleep patterns (current %.1f hours/night), diet (current %d calories/day, %.1f g protein/day), predominant mood: %s, and rest days.\n\n",
		stats.AvgSleepHours, stats.AvgCalories, stats.AvgProtein, stats.PredominantMood)
	fmt.Fprintf(&b, "Progress Tracking: Suggest 2-3 measurable metrics to monitor across different health aspects.\n\n")
	fmt.Fprintf(&b, "Maintain an encouraging tone using phrases like \"Great job with...\" and \"You might consider...\". Include 1-2 motivational quotes from famous athletes. Conclude by emphasizing sustainable habit-building. Add brief disclaimer to consult healthcare provider before major changes.\n\n")
	fmt.Fprintf(&b, "User Data:\n")
	fmt.Fprintf(&b, "Demographics: Age: %s, Gender: %s, Height: %s cm, Weight: %s kg, BMI: %s\n", age, gender, height, latestWeight, bmi)
	fmt.Fprintf(&b, "Current Goals: Weight target: %s kg, Daily steps target: %s, Sleep target: %s, Weekly running distance: %s km, Weekly training sessions: %s, Daily calories target: %s\n\n",
		weightTarget, stepsTarget, sleepTarget, runningDistanceGoal, trainingSessionsGoal, caloriesGoal)
	fmt.Fprintf(&b, "Weekly Average:\n")
	fmt.Fprintf(&b, "Steps: %d steps/day\n", stats.AvgSteps)
	fmt.Fprintf(&b, "Exercise: %d training sessions, %d running sessions\n", stats.TrainingSessions, stats.RunningSessions)
	fmt.Fprintf(&b, "Running: %.1f km, %.1f min/km pace\n", stats.AvgRunningDistance, stats.AvgRunningPace)
	fmt.Fprintf(&b, "Sleep: %.1f hours/night\n", stats.AvgSleepHours)
	fmt.Fprintf(&b, "Diet: %d calories/day, %.1f g protein/day\n", stats.AvgCalories, stats.AvgProtein)
	fmt.Fprintf(&b, "Mood: %s\n", stats.PredominantMood)
	fmt.Fprintf(&b, "Weight: %s kg, %s kg from target\n", latestWeight, weightDiff)
	fmt.Fprintf(&b, "Active Days: %d/7\n\n", stats.ActiveDays)
	fmt.Fprintf(&b, "Recent Progress: %s\n", achievementsText)

	return b.String()
}
