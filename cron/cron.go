package cron

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/the-witty-one/doctors-appointment-api/store"
	"github.com/the-witty-one/doctors-appointment-api/utils"
)

// Digest emails an administrator a per-doctor summary of the next day's
// bookings on a fixed schedule.
type Digest struct {
	store      *store.Store
	mailer     *utils.Mailer
	adminEmail string
}

func NewDigest(s *store.Store, mailer *utils.Mailer, adminEmail string) *Digest {
	return &Digest{store: s, mailer: mailer, adminEmail: adminEmail}
}

// Start registers the digest job on the given cron schedule and starts the
// scheduler.
func (d *Digest) Start(schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, d.send)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for admin digest")
	return nil
}

func (d *Digest) send() {
	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	doctors, err := d.store.ListDoctors()
	if err != nil {
		log.Printf("Error fetching doctors for digest: %v", err)
		return
	}

	var rows strings.Builder
	for _, doctor := range doctors {
		count, err := d.store.CountAppointments(doctor.ID, tomorrow)
		if err != nil {
			log.Printf("Error counting appointments for doctor %d: %v", doctor.ID, err)
			continue
		}
		rows.WriteString(fmt.Sprintf(
			"<li><strong>%s</strong> (%s): %d of %d slots booked</li>",
			doctor.Name, doctor.Specialty, count, doctor.MaxPatients,
		))
	}

	body := fmt.Sprintf(`
		<p>Schedule for %s:</p>
		<ul>%s</ul>
		<p>Best regards,</p>
		<p>Your Appointment Team</p>
	`, tomorrow.Format("02-01-2006"), rows.String())

	subject := fmt.Sprintf("Appointment Digest - %s", tomorrow.Format("02-01-2006"))
	if err := d.mailer.Send(d.adminEmail, subject, body); err != nil {
		log.Printf("Failed to send admin digest: %v", err)
		return
	}
	log.Printf("Sent admin digest to %s", d.adminEmail)
}
