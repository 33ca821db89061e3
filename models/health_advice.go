package models

import "time"

// HealthAdvice stores AI-generated advice. Only the 5 most recent rows
// per user are retained; older ones are pruned after each insert.
type HealthAdvice struct {
    ID        uint   `gorm:"primaryKey"`
    UserID    uint   `gorm:"index;not null"`
    Content   string `gorm:"type:text;not null"`
    CreatedAt time.Time
}
