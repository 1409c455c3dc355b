package controllers

import (
	"errors"
	"io"

	"fleet-backend/config"
	"fleet-backend/ingest"
	"fleet-backend/inspections/services"
	"fleet-backend/middleware"
	"fleet-backend/tasks"
	"fleet-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BulkUploadInspections ingests an inspection spreadsheet. Rows with an
// unknown callsign are skipped and reported.
func (ic *InspectionController) BulkUploadInspections(c *fiber.Ctx) error {
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

	result, err := services.ProcessInspectionUpload(buf, ic.InspectionRepo, createdBy)
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
				"error":   "Every row was skipped. Check the required columns (date, callsign, status, technician) against the template.",
				"errors":  result.Outcome.Errors(),
			})
		default:
			config.Logger.Error("Inspection bulk upload failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Bulk upload failed",
				"error":   err.Error(),
			})
		}
	}

	if ic.AsynqClient != nil && len(result.ErrorLog) > 0 && createdBy != "" {
		ids := make([]uuid.UUID, 0, len(result.ErrorLog))
		for _, e := range result.ErrorLog {
			ids = append(ids, e.ID)
		}
		task, terr := tasks.NewUploadErrorReportTask("inspections", createdBy, ids)
		if terr == nil {
			_, terr = ic.AsynqClient.Enqueue(task)
		}
		if terr != nil {
			config.Logger.Warn("Failed to enqueue upload error report", zap.Error(terr))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Inspection upload processed",
		"createdCount": result.Outcome.Created,
		"skippedCount": result.Outcome.Skipped,
		"errors":       result.Outcome.Errors(),
	})
}
