package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/the-witty-one/doctors-appointment-api/controllers"
)

// SetupDoctorRoutes configures all doctor related routes
func SetupDoctorRoutes(app *fiber.App, ctl *controllers.DoctorController) {
	app.Post("/doctor/", ctl.CreateDoctor)
	app.Get("/doctors/", ctl.ListDoctors)
	app.Get("/doctors/:id", ctl.GetDoctor)
}
