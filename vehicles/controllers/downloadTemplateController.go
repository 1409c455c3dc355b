package controllers

import (
	"fleet-backend/utils"
	"fleet-backend/vehicles/services"

	"github.com/gofiber/fiber/v2"
)

// DownloadVehicleTemplate streams the canonical bulk-upload template.
func (vc *VehicleController) DownloadVehicleTemplate(c *fiber.Ctx) error {
	f, err := utils.BuildTemplateWorkbook("Vehicles", services.VehicleTemplateHeaders, services.VehicleTemplateSample)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to build template",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="vehicle_upload_template.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
