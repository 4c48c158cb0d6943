package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/the-witty-one/doctors-appointment-api/models"
)

// Migrate ensures the three tables exist. Safe to run against an
// already-initialized store.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
