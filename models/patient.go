package models

import "time"

// Patient rows are denormalized: every successful booking inserts a fresh
// row, with no deduplication against earlier bookings by the same person.
type Patient struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PatientName string    `json:"patient_name" gorm:"not null"`
	PatientAge  int       `json:"patient_age" gorm:"not null"`
	Gender      string    `json:"gender" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
