package models

import (
    "math"
    "time"

    "gorm.io/gorm"
)

type WeightRecord struct {
    gorm.Model
    UserID uint      `gorm:"index;not null"`
    Date   time.Time `gorm:"index;not null"`
    Weight float64   `gorm:"not null"` // kg
    Height float64   `gorm:"not null"` // cm
    Notes  string    `gorm:"type:text"`
}

// BMI returns weight/(height in m)^2 rounded to two decimals.
func (r WeightRecord) BMI() float64 {
    if r.Height <= 0 {
        return 0
    }
    h := r.Height / 100.0
    return math.Round(r.Weight/(h*h)*100) / 100
}

// BMICategory maps the BMI onto the WHO brackets (18.5 / 25 / 30).
func (r WeightRecord) BMICategory() string {
    bmi := r.BMI()
    switch {
    case bmi < 18.5:
        return "Underweight"
    case bmi < 25.0:
        return "Normal weight"
    case bmi < 30.0:
        return "Overweight"
    default:
        return "Obese"
    }
}
