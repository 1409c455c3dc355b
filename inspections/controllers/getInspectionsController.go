package controllers

import (
	"fleet-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllInspectionsController lists inspections. Supports ?vehicleId= and
// ?status= filters.
func (ic *InspectionController) GetAllInspectionsController(c *fiber.Ctx) error {
	inspections, err := ic.InspectionRepo.ListInspections(c.Query("vehicleId"), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch inspections",
			"error":   err.Error(),
		})
	}
	return c.JSON(inspections)
}

// GetSingleInspectionController returns one inspection by ID.
func (ic *InspectionController) GetSingleInspectionController(c *fiber.Ctx) error {
	inspection, err := ic.InspectionRepo.GetInspectionByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Inspection not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(inspection)
}

// GetInspectionScheduleController lists scheduled inspections from today
// onward, soonest first.
func (ic *InspectionController) GetInspectionScheduleController(c *fiber.Ctx) error {
	inspections, err := ic.InspectionRepo.ListUpcomingInspections(utils.Today())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch inspection schedule",
			"error":   err.Error(),
		})
	}
	return c.JSON(inspections)
}
