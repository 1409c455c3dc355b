package controllers

import (
	"fleet-backend/inspections/services"
	"fleet-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// DownloadInspectionTemplate streams the canonical bulk-upload template.
func (ic *InspectionController) DownloadInspectionTemplate(c *fiber.Ctx) error {
	f, err := utils.BuildTemplateWorkbook("Inspections", services.InspectionTemplateHeaders, services.InspectionTemplateSample)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to build template",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inspection_upload_template.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
