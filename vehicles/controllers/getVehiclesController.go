package controllers

import (
	"fleet-backend/db/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllVehiclesController lists the fleet sorted by callsign.
func (vc *VehicleController) GetAllVehiclesController(c *fiber.Ctx) error {
	vehicles, err := vc.VehicleRepo.ListVehicles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch vehicles",
			"error":   err.Error(),
		})
	}
	return c.JSON(vehicles)
}

// GetSingleVehicleController returns one vehicle with its related records.
func (vc *VehicleController) GetSingleVehicleController(c *fiber.Ctx) error {
	id := c.Params("id")

	vehicle, err := vc.VehicleRepo.GetVehicleByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Vehicle not found"})
	}

	var inspections []models.Inspection
	if err := vc.DB.Where("vehicle_id = ?", id).Order("date DESC").Find(&inspections).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch vehicle inspections",
			"error":   err.Error(),
		})
	}

	var fuelRecords []models.FuelRecord
	if err := vc.DB.Where("vehicle_id = ?", id).Order("date DESC").Find(&fuelRecords).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch vehicle fuel records",
			"error":   err.Error(),
		})
	}

	var maintenance []models.Maintenance
	if err := vc.DB.Where("vehicle_id = ?", id).Order("date_in DESC").Find(&maintenance).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch vehicle maintenance records",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"vehicle":     vehicle,
		"inspections": inspections,
		"fuelRecords": fuelRecords,
		"maintenance": maintenance,
	})
}
