package controllers

import (
	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/maintenance/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateMaintenanceController creates a single maintenance job. A job created
// as Completed stamps a service milestone on the vehicle.
func (mc *MaintenanceController) CreateMaintenanceController(c *fiber.Ctx) error {
	var job models.Maintenance
	if err := c.BodyParser(&job); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid maintenance payload",
			"error":   err.Error(),
		})
	}

	if job.VehicleID == uuid.Nil || job.Category == "" || job.Type == "" || job.DateIn.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   "vehicle_id, category, type and dateIn are required",
		})
	}
	job.AddedVia = string(models.SingleAddedViaType)

	created, err := mc.MaintenanceRepo.CreateMaintenance(&job)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to create maintenance record",
			"error":   err.Error(),
		})
	}

	mc.stampMilestone(created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateMaintenanceController updates a maintenance job by ID. A job moved to
// Completed stamps a service milestone on the vehicle.
func (mc *MaintenanceController) UpdateMaintenanceController(c *fiber.Ctx) error {
	existing, err := mc.MaintenanceRepo.GetMaintenanceByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Maintenance record not found"})
	}

	var payload models.Maintenance
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid maintenance payload",
			"error":   err.Error(),
		})
	}

	payload.ID = existing.ID
	payload.CreatedAt = existing.CreatedAt
	if payload.VehicleID == uuid.Nil {
		payload.VehicleID = existing.VehicleID
	}
	payload.Vehicle = nil

	wasCompleted := existing.Status == models.MaintenanceCompleted

	updated, err := mc.MaintenanceRepo.UpdateMaintenance(&payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to update maintenance record",
			"error":   err.Error(),
		})
	}

	if !wasCompleted {
		mc.stampMilestone(updated)
	}

	return c.JSON(updated)
}

// DeleteMaintenanceController deletes a maintenance job by ID.
func (mc *MaintenanceController) DeleteMaintenanceController(c *fiber.Ctx) error {
	if err := mc.MaintenanceRepo.DeleteMaintenance(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Maintenance record not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Maintenance record deleted"})
}

func (mc *MaintenanceController) stampMilestone(job *models.Maintenance) {
	if job.Status != models.MaintenanceCompleted {
		return
	}
	if err := mc.MaintenanceRepo.ApplyServiceMilestone(job.VehicleID, services.IsTireJob(job.Type)); err != nil {
		config.Logger.Warn("Failed to stamp service milestone",
			zap.String("vehicle_id", job.VehicleID.String()), zap.Error(err))
	}
}
