package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/the-witty-one/doctors-appointment-api/controllers"
)

// SetupPatientRoutes configures all patient related routes
func SetupPatientRoutes(app *fiber.App, ctl *controllers.PatientController) {
	app.Get("/patients/", ctl.ListPatients)
}
