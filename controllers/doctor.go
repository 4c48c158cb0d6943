package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/the-witty-one/doctors-appointment-api/cache"
	"github.com/the-witty-one/doctors-appointment-api/models"
	"github.com/the-witty-one/doctors-appointment-api/store"
	"github.com/the-witty-one/doctors-appointment-api/utils"
)

type DoctorController struct {
	store *store.Store
	cache *cache.Cache
}

func NewDoctorController(s *store.Store, c *cache.Cache) *DoctorController {
	return &DoctorController{store: s, cache: c}
}

// CreateDoctor echoes the created doctor, including its assigned id.
func (ctl *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	doctor.ID = 0

	if err := ctl.store.CreateDoctor(&doctor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}
	ctl.cache.InvalidateDoctors(c.Context())

	return c.JSON(doctor)
}

// GetDoctor returns the doctor or a 404 message.
func (ctl *DoctorController) GetDoctor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.MessageResponse{
			Message: "doctor details not found",
		})
	}

	doctor, err := ctl.store.GetDoctor(uint(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctor",
			Error:   err.Error(),
		})
	}
	if doctor == nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.MessageResponse{
			Message: "doctor details not found",
		})
	}
	return c.JSON(doctor)
}

// ListDoctors serves the doctor list, through the redis cache when one is
// configured.
func (ctl *DoctorController) ListDoctors(c *fiber.Ctx) error {
	if doctors, ok := ctl.cache.GetDoctors(c.Context()); ok {
		return c.JSON(doctors)
	}

	doctors, err := ctl.store.ListDoctors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
			Error:   err.Error(),
		})
	}
	ctl.cache.SetDoctors(c.Context(), doctors)
	return c.JSON(doctors)
}
