package db

import (
	"gorm.io/gorm"

	"github.com/the-witty-one/doctors-appointment-api/models"
)

var sampleDoctors = []models.Doctor{
	{
		Name:             "Dr. Smith",
		Specialty:        "Cardiology",
		MaxPatients:      1,
		PracticeLocation: "NewYork",
		PracticeDays:     "Mon,Tue,Wed,Thu,Fri",
	},
	{
		Name:             "Dr. Johnson",
		Specialty:        "Dermatology",
		MaxPatients:      15,
		PracticeLocation: "NewYork",
		PracticeDays:     "Mon,Tue,Wed,Thu,Fri",
	},
	{
		Name:             "Dr. Jack",
		Specialty:        "Ophthalmologist",
		MaxPatients:      20,
		PracticeLocation: "NewYork",
		PracticeDays:     "Mon,Tue,Wed,Thu,Fri",
	},
	{
		Name:             "Dr. Jack",
		Specialty:        "Gastroenterologist",
		MaxPatients:      12,
		PracticeLocation: "NewYork",
		PracticeDays:     "Mon,Tue,Wed,Thu,Fri",
	},
}

// SeedSampleData deletes every row from all three tables and reinserts the
// fixed sample doctors. Destructive; callers must gate it behind the
// sample-data mode and never run it against a populated production store.
func SeedSampleData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.Appointment{},
			&models.Patient{},
			&models.Doctor{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		for i := range sampleDoctors {
			doctor := sampleDoctors[i]
			doctor.ID = 0
			if err := tx.Create(&doctor).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
