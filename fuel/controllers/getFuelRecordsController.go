package controllers

import (
	"time"

	"fleet-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllFuelRecordsController lists refueling slips. Supports ?vehicleId=,
// ?from= and ?to= (YYYY-MM-DD) filters.
func (fc *FuelController) GetAllFuelRecordsController(c *fiber.Ctx) error {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, utils.DateLocation)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid 'from' date, expected YYYY-MM-DD",
			})
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, utils.DateLocation)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid 'to' date, expected YYYY-MM-DD",
			})
		}
		to = &t
	}

	records, err := fc.FuelRepo.ListFuelRecords(c.Query("vehicleId"), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch fuel records",
			"error":   err.Error(),
		})
	}
	return c.JSON(records)
}

// GetSingleFuelRecordController returns one refueling slip by ID.
func (fc *FuelController) GetSingleFuelRecordController(c *fiber.Ctx) error {
	record, err := fc.FuelRepo.GetFuelRecordByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Fuel record not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(record)
}
