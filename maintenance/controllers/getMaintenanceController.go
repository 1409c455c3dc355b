package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// GetAllMaintenanceController lists maintenance jobs. Supports ?vehicleId=
// and ?status= filters.
func (mc *MaintenanceController) GetAllMaintenanceController(c *fiber.Ctx) error {
	jobs, err := mc.MaintenanceRepo.ListMaintenance(c.Query("vehicleId"), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch maintenance records",
			"error":   err.Error(),
		})
	}
	return c.JSON(jobs)
}

// GetSingleMaintenanceController returns one maintenance job by ID.
func (mc *MaintenanceController) GetSingleMaintenanceController(c *fiber.Ctx) error {
	job, err := mc.MaintenanceRepo.GetMaintenanceByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Maintenance record not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(job)
}
