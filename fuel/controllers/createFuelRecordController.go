package controllers

import (
	"fleet-backend/config"
	"fleet-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateFuelRecordController creates a single refueling slip and propagates
// the odometer reading onto the vehicle.
func (fc *FuelController) CreateFuelRecordController(c *fiber.Ctx) error {
	var record models.FuelRecord
	if err := c.BodyParser(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid fuel record payload",
			"error":   err.Error(),
		})
	}

	if record.VehicleID == uuid.Nil || record.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   "vehicle_id and date are required",
		})
	}
	record.AddedVia = string(models.SingleAddedViaType)

	created, err := fc.FuelRepo.CreateFuelRecord(&record)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to create fuel record",
			"error":   err.Error(),
		})
	}

	fc.propagateMileage(created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateFuelRecordController updates a refueling slip by ID and re-propagates
// the odometer reading.
func (fc *FuelController) UpdateFuelRecordController(c *fiber.Ctx) error {
	existing, err := fc.FuelRepo.GetFuelRecordByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Fuel record not found"})
	}

	var payload models.FuelRecord
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid fuel record payload",
			"error":   err.Error(),
		})
	}

	payload.ID = existing.ID
	payload.CreatedAt = existing.CreatedAt
	if payload.VehicleID == uuid.Nil {
		payload.VehicleID = existing.VehicleID
	}
	payload.Vehicle = nil

	updated, err := fc.FuelRepo.UpdateFuelRecord(&payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to update fuel record",
			"error":   err.Error(),
		})
	}

	fc.propagateMileage(updated)

	return c.JSON(updated)
}

// DeleteFuelRecordController deletes a refueling slip by ID.
func (fc *FuelController) DeleteFuelRecordController(c *fiber.Ctx) error {
	if err := fc.FuelRepo.DeleteFuelRecord(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Fuel record not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Fuel record deleted"})
}

func (fc *FuelController) propagateMileage(record *models.FuelRecord) {
	if record.CurrentRefuelingKM <= 0 {
		return
	}
	if err := fc.FuelRepo.UpdateVehicleMileage(record.VehicleID, record.CurrentRefuelingKM); err != nil {
		config.Logger.Warn("Failed to propagate refueling mileage",
			zap.String("vehicle_id", record.VehicleID.String()), zap.Error(err))
	}
}
