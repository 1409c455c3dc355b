package controllers

import (
	"fleet-backend/config"
	"fleet-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateVehicleController updates a vehicle by ID.
func (vc *VehicleController) UpdateVehicleController(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := vc.VehicleRepo.GetVehicleByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Vehicle not found"})
	}

	var payload models.Vehicle
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid vehicle payload",
			"error":   err.Error(),
		})
	}

	payload.ID = existing.ID
	payload.CreatedAt = existing.CreatedAt

	updated, err := vc.VehicleRepo.UpdateVehicle(&payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to update vehicle",
			"error":   err.Error(),
		})
	}

	if vc.BleveRepo != nil {
		if err := vc.BleveRepo.UpdateVehicle(*updated); err != nil {
			config.Logger.Warn("Failed to reindex updated vehicle", zap.Error(err))
		}
	}

	return c.JSON(updated)
}
