package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Username string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    Age      *int
    Gender   string `gorm:"size:16"` // "male" | "female" | ""

    MFAEnabled    bool
    MFACode       string
    ResetToken    string
    ResetTokenExp time.Time
}
