package controllers

import (
	"fleet-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteVehicleController deletes a vehicle and all its associated records.
func (vc *VehicleController) DeleteVehicleController(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := vc.VehicleRepo.DeleteVehicle(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Vehicle not found",
			"error":   err.Error(),
		})
	}

	if vc.BleveRepo != nil {
		if err := vc.BleveRepo.DeleteVehicle(id); err != nil {
			config.Logger.Warn("Failed to remove vehicle from search index", zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{"message": "Vehicle and all associated records deleted"})
}
