package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/the-witty-one/doctors-appointment-api/models"
	"github.com/the-witty-one/doctors-appointment-api/store"
)

// DateLayout is the wire format for appointment dates: day-month-year with
// dash separators, e.g. "25-12-2024".
const DateLayout = "02-01-2006"

var (
	ErrDoctorNotFound    = errors.New("doctor details not found")
	ErrInvalidDate       = errors.New("date is in wrong format, accepted format - 'day-month-year'")
	ErrDoctorUnavailable = errors.New("doctor is not available for the selected date")
	ErrPastDate          = errors.New("cannot book for a past date")
)

// Request is one booking attempt.
type Request struct {
	DoctorID        uint   `json:"doctor_id"`
	PatientName     string `json:"patient_name"`
	PatientAge      int    `json:"patient_age"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
}

// Service decides whether a requested appointment may be persisted and, when
// it may, commits the appointment plus its denormalized patient row in a
// single transaction.
type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(s *store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// Book applies the booking rules in a fixed order and reports the first
// failure: doctor lookup, date format, Sunday rule, past-date rule, then the
// per-day capacity check. The capacity check and the two inserts share one
// transaction so concurrent bookings cannot push a doctor past capacity and a
// write failure cannot leave an appointment without its patient row.
func (svc *Service) Book(req Request) (*models.Appointment, error) {
	doctor, err := svc.store.GetDoctor(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("looking up doctor: %w", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	date, err := time.ParseInLocation(DateLayout, req.AppointmentDate, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if date.Weekday() == time.Sunday {
		return nil, ErrDoctorUnavailable
	}

	if date.Before(svc.today()) {
		return nil, ErrPastDate
	}

	appointment := &models.Appointment{
		DoctorID:        doctor.ID,
		PatientName:     req.PatientName,
		PatientAge:      req.PatientAge,
		Gender:          req.Gender,
		AppointmentDate: date,
	}

	err = svc.store.Transaction(func(tx *store.Store) error {
		// Re-fetch under the transaction; on postgres this locks the doctor
		// row so two bookings for the same doctor serialize.
		lockedDoctor, err := tx.GetDoctorForUpdate(doctor.ID)
		if err != nil {
			return err
		}
		if lockedDoctor == nil {
			return ErrDoctorNotFound
		}

		count, err := tx.CountAppointments(lockedDoctor.ID, date)
		if err != nil {
			return err
		}
		if count >= int64(lockedDoctor.MaxPatients) {
			return ErrDoctorUnavailable
		}

		if err := tx.CreateAppointment(appointment); err != nil {
			return err
		}
		return tx.CreatePatient(&models.Patient{
			PatientName: req.PatientName,
			PatientAge:  req.PatientAge,
			Gender:      req.Gender,
		})
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// today is the current calendar date at midnight UTC. Comparing at date
// granularity keeps same-day bookings valid for the whole day.
func (svc *Service) today() time.Time {
	now := svc.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
