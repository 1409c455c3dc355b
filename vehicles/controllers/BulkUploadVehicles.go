package controllers

import (
	"errors"
	"io"

	"fleet-backend/config"
	"fleet-backend/ingest"
	"fleet-backend/middleware"
	"fleet-backend/tasks"
	"fleet-backend/token"
	"fleet-backend/vehicles/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BulkUploadVehicles ingests a vehicle spreadsheet: decode, normalize, screen
// duplicates, commit what survives. Bad rows are skipped and reported, never
// fatal for their siblings.
func (vc *VehicleController) BulkUploadVehicles(c *fiber.Ctx) error {
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

	createdBy := uploaderEmail(c)
	result, err := services.ProcessVehicleUpload(buf, vc.VehicleRepo, createdBy)
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
				"error":   "Every row was skipped. Download the template and check the header row and required fields (name, callsign, model, year).",
				"errors":  result.Outcome.Errors(),
			})
		default:
			config.Logger.Error("Vehicle bulk upload failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Bulk upload failed",
				"error":   err.Error(),
			})
		}
	}

	vc.enqueueUploadFollowups(result, createdBy)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Vehicle upload processed",
		"createdCount": result.Outcome.Created,
		"skippedCount": result.Outcome.Skipped,
		"errors":       result.Outcome.Errors(),
	})
}

// enqueueUploadFollowups hands the post-commit work (search reindex, skipped
// rows report) to the background worker. Failures are logged, not surfaced;
// the upload itself already succeeded.
func (vc *VehicleController) enqueueUploadFollowups(result *services.VehicleUploadResult, createdBy string) {
	if vc.AsynqClient == nil {
		return
	}

	if len(result.Created) > 0 {
		ids := make([]uuid.UUID, 0, len(result.Created))
		for _, v := range result.Created {
			ids = append(ids, v.ID)
		}
		task, err := tasks.NewVehicleReindexTask(ids)
		if err == nil {
			_, err = vc.AsynqClient.Enqueue(task)
		}
		if err != nil {
			config.Logger.Warn("Failed to enqueue vehicle reindex", zap.Error(err))
		}
	}

	if len(result.ErrorLog) > 0 && createdBy != "" {
		ids := make([]uuid.UUID, 0, len(result.ErrorLog))
		for _, e := range result.ErrorLog {
			ids = append(ids, e.ID)
		}
		task, err := tasks.NewUploadErrorReportTask("vehicles", createdBy, ids)
		if err == nil {
			_, err = vc.AsynqClient.Enqueue(task)
		}
		if err != nil {
			config.Logger.Warn("Failed to enqueue upload error report", zap.Error(err))
		}
	}
}

func uploaderEmail(c *fiber.Ctx) string {
	if payload, ok := c.Locals("user").(*token.Payload); ok {
		return payload.Email
	}
	return ""
}
