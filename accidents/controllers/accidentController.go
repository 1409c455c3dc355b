package controllers

import (
	"fleet-backend/accidents/repositories"
	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccidentController struct {
	AccidentRepo repositories.AccidentRepository
	DB           *gorm.DB
}

// GetAllAccidentsController lists accident reports. Supports ?vehicleId=.
func (ac *AccidentController) GetAllAccidentsController(c *fiber.Ctx) error {
	accidents, err := ac.AccidentRepo.ListAccidents(c.Query("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch accidents",
			"error":   err.Error(),
		})
	}
	return c.JSON(accidents)
}

// GetSingleAccidentController returns one accident report by ID.
func (ac *AccidentController) GetSingleAccidentController(c *fiber.Ctx) error {
	accident, err := ac.AccidentRepo.GetAccidentByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Accident not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(accident)
}

// CreateAccidentController files a new accident report.
func (ac *AccidentController) CreateAccidentController(c *fiber.Ctx) error {
	var accident models.Accident
	if err := c.BodyParser(&accident); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid accident payload",
			"error":   err.Error(),
		})
	}

	if accident.VehicleID == uuid.Nil || accident.AccidentDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   "vehicle_id and accidentDate are required",
		})
	}
	accident.AccidentTime = ingest.ParseClock(accident.AccidentTime)

	created, err := ac.AccidentRepo.CreateAccident(&accident)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to create accident",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateAccidentController updates an accident report by ID.
func (ac *AccidentController) UpdateAccidentController(c *fiber.Ctx) error {
	existing, err := ac.AccidentRepo.GetAccidentByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Accident not found"})
	}

	var payload models.Accident
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid accident payload",
			"error":   err.Error(),
		})
	}

	payload.ID = existing.ID
	payload.CreatedAt = existing.CreatedAt
	if payload.VehicleID == uuid.Nil {
		payload.VehicleID = existing.VehicleID
	}
	payload.Vehicle = nil
	payload.AccidentTime = ingest.ParseClock(payload.AccidentTime)

	updated, err := ac.AccidentRepo.UpdateAccident(&payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Failed to update accident",
			"error":   err.Error(),
		})
	}
	return c.JSON(updated)
}

// DeleteAccidentController deletes an accident report by ID.
func (ac *AccidentController) DeleteAccidentController(c *fiber.Ctx) error {
	if err := ac.AccidentRepo.DeleteAccident(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Accident not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Accident deleted"})
}
