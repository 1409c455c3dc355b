package controllers

import (
	"fleet-backend/maintenance/services"
	"fleet-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// DownloadMaintenanceTemplate streams the canonical bulk-upload template.
// Decoding is positional, so the column order here is the contract.
func (mc *MaintenanceController) DownloadMaintenanceTemplate(c *fiber.Ctx) error {
	f, err := utils.BuildTemplateWorkbook("Maintenance", services.MaintenanceTemplateHeaders, services.MaintenanceTemplateSample)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to build template",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="maintenance_upload_template.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
