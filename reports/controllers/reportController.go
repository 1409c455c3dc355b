package controllers

import (
	"time"

	"fleet-backend/reports/repositories"
	"fleet-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	ReportRepo repositories.ReportRepository
	DB         *gorm.DB
}

type generateReportRequest struct {
	Month string `json:"month"` // YYYY-MM, defaults to the current month
}

// GenerateReportController builds one of the monthly fleet reports. The
// report type comes from the path; the month, when absent, is the current one.
func (rc *ReportController) GenerateReportController(c *fiber.Ctx) error {
	var req generateReportRequest
	// Body is optional; a bare POST means "this month".
	_ = c.BodyParser(&req)

	anchor := utils.Today()
	if req.Month != "" {
		t, err := time.ParseInLocation("2006-01", req.Month, utils.DateLocation)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid month, expected YYYY-MM",
			})
		}
		anchor = t
	}
	from, to := utils.MonthWindow(anchor)

	reportType := c.Params("type")
	var (
		data interface{}
		err  error
	)
	switch reportType {
	case "fleet-performance":
		data, err = rc.ReportRepo.FleetPerformance(from, to)
	case "fuel-efficiency":
		data, err = rc.ReportRepo.FuelEfficiency(from, to)
	case "maintenance-costs":
		data, err = rc.ReportRepo.MaintenanceCosts(from, to)
	case "vehicle-health":
		data, err = rc.ReportRepo.VehicleHealth()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unknown report type",
			"error":   "Supported types: fleet-performance, fuel-efficiency, maintenance-costs, vehicle-health",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate report",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"type": reportType,
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
		"data": data,
	})
}
