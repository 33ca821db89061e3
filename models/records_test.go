package models

import (
	"math"
	"testing"
)

func TestSleepRecordTotalHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		want    float64
	}{
		{"seven and a half", 7, 30, 7.5},
		{"whole hours", 8, 0, 8.0},
		{"minutes only", 0, 45, 0.75},
		{"zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SleepRecord{Hours: tt.hours, Minutes: tt.minutes}
			if got := r.TotalHours(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TotalHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunningRecordPace(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		duration int
		want     string
	}{
		{"six minute pace", 5.0, 30, "6:00 min/km"},
		{"uneven pace", 10.0, 55, "5:30 min/km"},
		{"sub six", 5.0, 27, "5:24 min/km"},
		{"zero distance", 0, 30, "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := RunningRecord{Distance: tt.distance, DurationMinutes: tt.duration}
			if got := r.Pace(); got != tt.want {
				t.Errorf("Pace() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeightRecordBMI(t *testing.T) {
	r := WeightRecord{Weight: 75, Height: 180}
	if got := r.BMI(); got != 23.15 {
		t.Errorf("BMI() = %v, want 23.15", got)
	}
	if got := r.BMICategory(); got != "Normal weight" {
		t.Errorf("BMICategory() = %q, want %q", got, "Normal weight")
	}
}

func TestWeightRecordBMICategories(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
		want   string
	}{
		{"underweight", 50, 180, "Underweight"},
		{"normal", 70, 175, "Normal weight"},
		{"overweight", 85, 175, "Overweight"},
		{"obese", 100, 170, "Obese"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := WeightRecord{Weight: tt.weight, Height: tt.height}
			if got := r.BMICategory(); got != tt.want {
				t.Errorf("BMICategory(%v kg, %v cm) = %q, want %q", tt.weight, tt.height, got, tt.want)
			}
		})
	}
}

func TestWeightRecordBMIZeroHeight(t *testing.T) {
	r := WeightRecord{Weight: 75, Height: 0}
	if got := r.BMI(); got != 0 {
		t.Errorf("BMI() with zero height = %v, want 0", got)
	}
}
