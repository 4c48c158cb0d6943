package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/the-witty-one/doctors-appointment-api/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctl *controllers.AppointmentController) {
	app.Post("/book-appointment/", ctl.BookAppointment)
	app.Get("/appointments/", ctl.ListAppointments)
}
