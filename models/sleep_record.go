package models

import (
    "time"

    "gorm.io/gorm"
)

// Sleep quality choices.
const (
    SleepPoor      = "poor"
    SleepFair      = "fair"
    SleepGood      = "good"
    SleepExcellent = "excellent"
)

type SleepRecord struct {
    gorm.Model
    UserID  uint      `gorm:"index;not null"`
    Date    time.Time `gorm:"index;not null"`
    Hours   int       `gorm:"not null"`
    Minutes int       `gorm:"not null"`
    Quality string    `gorm:"size:20"` // poor|fair|good|excellent
}

// TotalHours returns the sleep duration in fractional hours.
func (r SleepRecord) TotalHours() float64 {
    return float64(r.Hours) + float64(r.Minutes)/60.0
}
