package controllers

import (
	"fleet-backend/config"
	"fleet-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInspectionController creates a single inspection and propagates the
// meter reading onto the vehicle.
func (ic *InspectionController) CreateInspectionController(c *fiber.Ctx) error {
	var inspection models.Inspection
	if err := c.BodyParser(&inspection); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid inspection payload",
			"error":   err.Error(),
		})
	}

	if inspection.VehicleID == uuid.Nil || inspection.Date.IsZero() || inspection.Technician == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   "vehicle_id, date and technician are required",
		})
	}
	inspection.AddedVia = string(models.SingleAddedViaType)

	created, err := ic.InspectionRepo.CreateInspection(&inspection)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to create inspection",
			"error":   err.Error(),
		})
	}

	ic.propagateMeterReading(created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateInspectionController updates an inspection by ID and re-propagates
// the meter reading.
func (ic *InspectionController) UpdateInspectionController(c *fiber.Ctx) error {
	existing, err := ic.InspectionRepo.GetInspectionByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Inspection not found"})
	}

	var payload models.Inspection
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid inspection payload",
			"error":   err.Error(),
		})
	}

	payload.ID = existing.ID
	payload.CreatedAt = existing.CreatedAt
	if payload.VehicleID == uuid.Nil {
		payload.VehicleID = existing.VehicleID
	}
	payload.Vehicle = nil

	updated, err := ic.InspectionRepo.UpdateInspection(&payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to update inspection",
			"error":   err.Error(),
		})
	}

	ic.propagateMeterReading(updated)

	return c.JSON(updated)
}

// DeleteInspectionController deletes an inspection by ID.
func (ic *InspectionController) DeleteInspectionController(c *fiber.Ctx) error {
	if err := ic.InspectionRepo.DeleteInspection(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Inspection not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Inspection deleted"})
}

func (ic *InspectionController) propagateMeterReading(inspection *models.Inspection) {
	if inspection.CurrentMeterReading == nil || *inspection.CurrentMeterReading <= 0 {
		return
	}
	if err := ic.InspectionRepo.UpdateVehicleMileage(inspection.VehicleID, *inspection.CurrentMeterReading); err != nil {
		config.Logger.Warn("Failed to propagate inspection meter reading",
			zap.String("vehicle_id", inspection.VehicleID.String()), zap.Error(err))
	}
}
