package controllers

import (
	"fleet-backend/fuel/services"
	"fleet-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// DownloadFuelTemplate streams the canonical bulk-upload template.
func (fc *FuelController) DownloadFuelTemplate(c *fiber.Ctx) error {
	f, err := utils.BuildTemplateWorkbook("Fuel", services.FuelTemplateHeaders, services.FuelTemplateSample)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to build template",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fuel_upload_template.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
