package models

import (
    "fmt"
    "time"

    "gorm.io/gorm"
)

type StepsRecord struct {
    gorm.Model
    UserID     uint      `gorm:"index;not null"`
    Date       time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
    StepsCount int       `gorm:"not null"`
}

func (r StepsRecord) String() string {
    return fmt.Sprintf("%s - %d steps", r.Date.Format("2006-01-02"), r.StepsCount)
}
