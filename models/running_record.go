package models

import (
    "fmt"
    "math"
    "time"

    "gorm.io/gorm"
)

type RunningRecord struct {
    gorm.Model
    UserID          uint      `gorm:"index;not null"`
    Date            time.Time `gorm:"index;not null"`
    Distance        float64   `gorm:"not null"` // km
    DurationMinutes int       `gorm:"not null"`
    CaloriesBurned  *int
}

// Pace formats duration/distance as "M:SS min/km", e.g. 30 min over 5 km -> "6:00 min/km".
func (r RunningRecord) Pace() string {
    if r.Distance <= 0 {
        return "N/A"
    }
    totalSeconds := int(math.Round(float64(r.DurationMinutes) / r.Distance * 60))
    return fmt.Sprintf("%d:%02d min/km", totalSeconds/60, totalSeconds%60)
}
