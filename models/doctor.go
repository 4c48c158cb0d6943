package models

import (
	"strings"
	"time"
)

type Doctor struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Specialty        string    `json:"specialty" gorm:"not null"`
	MaxPatients      int       `json:"max_patients" gorm:"not null"`
	PracticeLocation string    `json:"practice_location"`
	PracticeDays     string    `json:"practice_days" gorm:"not null"` // e.g. "Mon,Tue,Wed,Thu,Fri"
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PracticesOn reports whether the doctor nominally practices on the given
// weekday. Not enforced during booking beyond the blanket Sunday rule.
func (d *Doctor) PracticesOn(day time.Weekday) bool {
	for _, name := range strings.Split(d.PracticeDays, ",") {
		if strings.EqualFold(strings.TrimSpace(name), day.String()[:3]) {
			return true
		}
	}
	return false
}
