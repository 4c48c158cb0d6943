package models

import "time"

// Appointment carries a denormalized copy of the patient fields alongside the
// doctor reference. AppointmentDate is calendar-day granular, stored at
// midnight UTC so capacity counts can compare it by equality.
type Appointment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DoctorID        uint      `json:"doctor_id" gorm:"not null;index:idx_doctor_date"`
	Doctor          Doctor    `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientName     string    `json:"patient_name" gorm:"not null"`
	PatientAge      int       `json:"patient_age" gorm:"not null"`
	Gender          string    `json:"gender" gorm:"not null"`
	AppointmentDate time.Time `json:"appointment_date" gorm:"not null;index:idx_doctor_date"`
	CreatedAt       time.Time `json:"created_at"`
}
