package controllers

import (
	"errors"
	"io"

	"fleet-backend/config"
	"fleet-backend/ingest"
	"fleet-backend/maintenance/services"
	"fleet-backend/middleware"
	"fleet-backend/tasks"
	"fleet-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BulkUploadMaintenance ingests a workshop register sheet. The sheet has no
// header row; decoding is positional and starts below the free-text title
// rows. Rows with an unknown callsign are skipped and reported.
func (mc *MaintenanceController) BulkUploadMaintenance(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No file uploaded",
			"error":   "Attach an .xlsx workbook under the 'file' field",
		})
	}
	if !middleware.ValidExcelUpload(fileHeader) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unsupported file type",
			"error":   "Only Excel workbooks (.xlsx) are accepted",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read uploaded file",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read uploaded file",
			"error":   err.Error(),
		})
	}

	createdBy := ""
	if payload, ok := c.Locals("user").(*token.Payload); ok {
		createdBy = payload.Email
	}

	result, err := services.ProcessMaintenanceUpload(buf, mc.MaintenanceRepo, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrUnsupportedFileType):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unsupported file type",
				"error":   "The file could not be parsed as an Excel workbook. Legacy .xls files must be re-saved as .xlsx.",
			})
		case errors.Is(err, ingest.ErrEmptyWorkbook):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Empty workbook",
				"error":   "The uploaded workbook has no data rows",
			})
		case errors.Is(err, ingest.ErrNoValidRows):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "No valid rows",
				"error":   "No data rows were found. The register must follow the template column order, with dates in the first column.",
				"errors":  result.Outcome.Errors(),
			})
		default:
			config.Logger.Error("Maintenance bulk upload failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Bulk upload failed",
				"error":   err.Error(),
			})
		}
	}

	if mc.AsynqClient != nil && len(result.ErrorLog) > 0 && createdBy != "" {
		ids := make([]uuid.UUID, 0, len(result.ErrorLog))
		for _, e := range result.ErrorLog {
			ids = append(ids, e.ID)
		}
		task, terr := tasks.NewUploadErrorReportTask("maintenance", createdBy, ids)
		if terr == nil {
			_, terr = mc.AsynqClient.Enqueue(task)
		}
		if terr != nil {
			config.Logger.Warn("Failed to enqueue upload error report", zap.Error(terr))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Maintenance upload processed",
		"createdCount": result.Outcome.Created,
		"skippedCount": result.Outcome.Skipped,
		"errors":       result.Outcome.Errors(),
	})
}
