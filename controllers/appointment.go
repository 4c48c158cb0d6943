package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/the-witty-one/doctors-appointment-api/booking"
	"github.com/the-witty-one/doctors-appointment-api/store"
	"github.com/the-witty-one/doctors-appointment-api/utils"
)

type AppointmentController struct {
	store   *store.Store
	booking *booking.Service
}

func NewAppointmentController(s *store.Store, b *booking.Service) *AppointmentController {
	return &AppointmentController{store: s, booking: b}
}

// BookAppointment runs the booking rules and maps each outcome to its status
// and message pair.
func (ctl *AppointmentController) BookAppointment(c *fiber.Ctx) error {
	var req booking.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	_, err := ctl.booking.Book(req)
	switch {
	case err == nil:
		return c.JSON(utils.MessageResponse{Message: "appointment booked successfully!!"})
	case errors.Is(err, booking.ErrDoctorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.MessageResponse{Message: err.Error()})
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrDoctorUnavailable),
		errors.Is(err, booking.ErrPastDate):
		return c.Status(fiber.StatusForbidden).JSON(utils.MessageResponse{Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}
}

// ListAppointments returns every appointment with its doctor preloaded.
func (ctl *AppointmentController) ListAppointments(c *fiber.Ctx) error {
	appointments, err := ctl.store.ListAppointments()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}
	return c.JSON(appointments)
}
