package models

import (
    "gorm.io/gorm"
)

// HealthGoal holds one set of user targets. Every target is optional;
// a nil value renders as "Not set" in the advice prompt.
type HealthGoal struct {
    gorm.Model
    UserID                     uint     `gorm:"uniqueIndex;not null"`
    TargetWeight               *float64 // kg
    DailyStepsGoal             *int
    DailySleepHoursGoal        *int
    DailySleepMinutesGoal      *int
    WeeklyRunningDistanceGoal  *float64 // km
    WeeklyRunningSessionsGoal  *int
    WeeklyTrainingSessionsGoal *int
    DailyCaloriesGoal          *int
    DailyProteinGoal           *float64 // g
}
