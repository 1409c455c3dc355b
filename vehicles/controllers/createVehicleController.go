package controllers

import (
	"fleet-backend/config"
	"fleet-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateVehicleController creates a single vehicle from a JSON body.
func (vc *VehicleController) CreateVehicleController(c *fiber.Ctx) error {
	var vehicle models.Vehicle
	if err := c.BodyParser(&vehicle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid vehicle payload",
			"error":   err.Error(),
		})
	}

	if vehicle.Name == "" || vehicle.Callsign == "" || vehicle.Model == "" || vehicle.Year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields: name, callsign, model and year are mandatory",
		})
	}

	created, err := vc.VehicleRepo.CreateVehicle(&vehicle)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to create vehicle",
			"error":   err.Error(),
		})
	}

	if vc.BleveRepo != nil {
		if err := vc.BleveRepo.IndexSingleVehicle(*created); err != nil {
			// Search index is eventually consistent; do not fail the create.
			config.Logger.Warn("Failed to index new vehicle", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
