package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/the-witty-one/doctors-appointment-api/db"
	"github.com/the-witty-one/doctors-appointment-api/models"
	"github.com/the-witty-one/doctors-appointment-api/store"
)

// fixedNow is a Wednesday afternoon. Around it: 10-06 is the Tuesday before,
// 12-06 the Thursday after, 08-06 and 15-06 are Sundays.
var fixedNow = time.Date(2025, time.June, 11, 15, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	s := store.New(gormDB)
	svc := NewService(s)
	svc.now = func() time.Time { return fixedNow }
	return svc, s
}

func seedDoctor(t *testing.T, s *store.Store, maxPatients int) *models.Doctor {
	t.Helper()
	doctor := &models.Doctor{
		Name:             "Dr. Smith",
		Specialty:        "Cardiology",
		MaxPatients:      maxPatients,
		PracticeLocation: "NewYork",
		PracticeDays:     "Mon,Tue,Wed,Thu,Fri",
	}
	require.NoError(t, s.CreateDoctor(doctor))
	return doctor
}

func request(doctorID uint, date string) Request {
	return Request{
		DoctorID:        doctorID,
		PatientName:     "Alice",
		PatientAge:      30,
		Gender:          "female",
		AppointmentDate: date,
	}
}

func TestBookSuccess(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 2)

	appointment, err := svc.Book(request(doctor.ID, "12-06-2025"))
	require.NoError(t, err)
	assert.NotZero(t, appointment.ID)
	assert.Equal(t, doctor.ID, appointment.DoctorID)
	assert.Equal(t, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), appointment.AppointmentDate)

	// The denormalized patient row commits alongside the appointment.
	patients, err := s.ListPatients()
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Alice", patients[0].PatientName)
	assert.Equal(t, 30, patients[0].PatientAge)
}

func TestBookTodayIsAllowed(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 2)

	_, err := svc.Book(request(doctor.ID, "11-06-2025"))
	assert.NoError(t, err)
}

func TestBookDoctorNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	// The lookup runs before date parsing, so a missing doctor wins even
	// when the date is garbage.
	_, err := svc.Book(request(999, "not-a-date"))
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestBookInvalidDateFormat(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 2)

	for _, date := range []string{
		"31-02-2024", // impossible calendar date
		"2025-06-12", // wrong field order
		"12:06:2025", // wrong separators
		"",
	} {
		_, err := svc.Book(request(doctor.ID, date))
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}

func TestBookSundayRejected(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 100)

	_, err := svc.Book(request(doctor.ID, "15-06-2025"))
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
}

func TestBookSundayCheckedBeforePastDate(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 100)

	_, err := svc.Book(request(doctor.ID, "08-06-2025"))
	assert.ErrorIs(t, err, ErrDoctorUnavailable)
}

func TestBookPastDateRejected(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 2)

	_, err := svc.Book(request(doctor.ID, "10-06-2025"))
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestBookCapacityExceeded(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 1)

	_, err := svc.Book(request(doctor.ID, "12-06-2025"))
	require.NoError(t, err)

	_, err = svc.Book(request(doctor.ID, "12-06-2025"))
	assert.ErrorIs(t, err, ErrDoctorUnavailable)

	count, err := s.CountAppointments(doctor.ID, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBookCapacityIsPerDate(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 1)

	_, err := svc.Book(request(doctor.ID, "12-06-2025"))
	require.NoError(t, err)

	// A full Thursday does not block Friday.
	_, err = svc.Book(request(doctor.ID, "13-06-2025"))
	assert.NoError(t, err)
}

func TestBookNeverExceedsCapacity(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 3)

	for i := 0; i < 10; i++ {
		_, _ = svc.Book(request(doctor.ID, "12-06-2025"))
	}

	count, err := s.CountAppointments(doctor.ID, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestBookDuplicatesPatients(t *testing.T) {
	svc, s := newTestService(t)
	doctor := seedDoctor(t, s, 5)

	_, err := svc.Book(request(doctor.ID, "12-06-2025"))
	require.NoError(t, err)
	_, err = svc.Book(request(doctor.ID, "13-06-2025"))
	require.NoError(t, err)

	// Same person, two bookings, two patient rows.
	patients, err := s.ListPatients()
	require.NoError(t, err)
	assert.Len(t, patients, 2)
}
