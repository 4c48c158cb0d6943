package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/the-witty-one/doctors-appointment-api/models"
)

// Store is the persistence layer for doctors, patients and appointments. It
// holds no business rules; booking validation lives in the booking package.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn against a store bound to a single transaction. Either
// everything fn writes commits, or nothing does.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) CreateDoctor(doctor *models.Doctor) error {
	return s.db.Create(doctor).Error
}

// GetDoctor returns nil without error when no doctor has the given id.
func (s *Store) GetDoctor(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := s.db.First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

// GetDoctorForUpdate locks the doctor row for the rest of the enclosing
// transaction on databases that support row locks, serializing concurrent
// bookings for the same doctor. sqlite has a single writer, so the
// transaction alone covers it there.
func (s *Store) GetDoctorForUpdate(id uint) (*models.Doctor, error) {
	tx := s.db
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var doctor models.Doctor
	err := tx.First(&doctor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (s *Store) ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *Store) CreatePatient(patient *models.Patient) error {
	return s.db.Create(patient).Error
}

func (s *Store) ListPatients() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *Store) CreateAppointment(appointment *models.Appointment) error {
	return s.db.Create(appointment).Error
}

func (s *Store) ListAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.db.Preload("Doctor").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// CountAppointments returns how many appointments the doctor already holds on
// the given calendar date.
func (s *Store) CountAppointments(doctorID uint, date time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ?", doctorID, date).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
