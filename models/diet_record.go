package models

import (
    "time"

    "gorm.io/gorm"
)

type DietRecord struct {
    gorm.Model
    UserID   uint      `gorm:"index;not null"`
    Date     time.Time `gorm:"index;not null"`
    Calories int       `gorm:"not null"` // kcal
    Protein  *float64  // g
    Carbs    *float64  // g
    Fat      *float64  // g
    Notes    string    `gorm:"type:text"`
}
