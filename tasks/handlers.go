package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	indexing_repository "fleet-backend/bleve/repositories"
	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TaskHandler owns the dependencies background jobs need.
type TaskHandler struct {
	db        *gorm.DB
	bleveRepo indexing_repository.BleveRepositoryInterface
}

func NewTaskHandler(db *gorm.DB, bleveRepo indexing_repository.BleveRepositoryInterface) *TaskHandler {
	return &TaskHandler{db: db, bleveRepo: bleveRepo}
}

// HandleUploadErrorReport builds the skipped-rows workbook for one upload and
// mails the uploader a download link.
func (h *TaskHandler) HandleUploadErrorReport(ctx context.Context, t *asynq.Task) error {
	var p UploadErrorReportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("invalid error report payload: %w", err)
	}

	var rows []models.BulkUploadError
	if err := h.db.WithContext(ctx).Where("id IN ?", p.ErrorIDs).Order("row_number ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load skipped rows: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	reportID := uuid.New().String()
	filePath, err := utils.GenerateErrorReport(p.Domain, reportID, rows)
	if err != nil {
		return fmt.Errorf("failed to generate error report workbook: %w", err)
	}

	downloadLink := utils.GenerateDownloadLink(filePath)
	subject := fmt.Sprintf("%s upload errors - %s", p.Domain, time.Now().Format("2006-01-02 15:04:05"))
	message := "Please find the attached report of rows skipped during your bulk upload (missing fields, invalid dates, unknown callsigns and duplicates)."

	if err := utils.SendEmail(p.Recipient, message, subject, "", downloadLink); err != nil {
		return fmt.Errorf("failed to send error report email: %w", err)
	}

	active := true
	emailLog := models.EmailLog{
		ID:             uuid.New(),
		Recipient:      p.Recipient,
		Subject:        subject,
		Message:        message,
		SentAt:         time.Now(),
		Active:         &active,
		AttachmentPath: downloadLink,
	}
	if err := h.db.WithContext(ctx).Create(&emailLog).Error; err != nil {
		config.Logger.Warn("Failed to log error report email", zap.Error(err))
	}
	return nil
}

// HandleVehicleReindex refreshes the search index for the given vehicles.
func (h *TaskHandler) HandleVehicleReindex(ctx context.Context, t *asynq.Task) error {
	var p VehicleReindexPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("invalid reindex payload: %w", err)
	}
	if len(p.VehicleIDs) == 0 || h.bleveRepo == nil {
		return nil
	}

	var vehicles []models.Vehicle
	if err := h.db.WithContext(ctx).Where("id IN ?", p.VehicleIDs).Find(&vehicles).Error; err != nil {
		return fmt.Errorf("failed to load vehicles for reindex: %w", err)
	}
	return h.bleveRepo.IndexExistingVehicles(vehicles)
}
