package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/the-witty-one/doctors-appointment-api/store"
	"github.com/the-witty-one/doctors-appointment-api/utils"
)

type PatientController struct {
	store *store.Store
}

func NewPatientController(s *store.Store) *PatientController {
	return &PatientController{store: s}
}

func (ctl *PatientController) ListPatients(c *fiber.Ctx) error {
	patients, err := ctl.store.ListPatients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}
	return c.JSON(patients)
}
