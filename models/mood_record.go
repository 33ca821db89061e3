package models

import (
    "time"

    "gorm.io/gorm"
)

// Mood choices.
const (
    MoodTerrible  = "terrible"
    MoodBad       = "bad"
    MoodNeutral   = "neutral"
    MoodGood      = "good"
    MoodExcellent = "excellent"
)

type MoodRecord struct {
    gorm.Model
    UserID      uint      `gorm:"index;not null"`
    Date        time.Time `gorm:"index;not null"`
    Mood        string    `gorm:"size:20;not null"` // terrible|bad|neutral|good|excellent
    StressLevel *int      // 1-10
    Notes       string    `gorm:"type:text"`
}
