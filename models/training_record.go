package models

import (
    "time"

    "gorm.io/gorm"
)

// TrainingRecord allows multiple entries per day, unlike the other metrics.
type TrainingRecord struct {
    gorm.Model
    UserID          uint      `gorm:"index;not null"`
    Date            time.Time `gorm:"index;not null"`
    ExerciseType    string    `gorm:"not null"`
    Sets            *int
    Reps            *int
    Weight          *float64 // kg
    DurationMinutes *int
    CaloriesBurned  *int
    Notes           string `gorm:"type:text"`
}
