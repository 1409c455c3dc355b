package services

import (
	"fmt"

	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaintenanceBulkRepo is the slice of the maintenance repository the upload
// pipeline needs.
type MaintenanceBulkRepo interface {
	ListVehicleRefs() ([]ingest.VehicleRef, error)
	BulkCreateMaintenance(jobs []models.Maintenance) (int64, error)
	ApplyServiceMilestone(vehicleID uuid.UUID, tireJob bool) error
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

// MaintenanceUploadResult carries the outcome plus the committed jobs.
type MaintenanceUploadResult struct {
	Outcome  ingest.Outcome
	Created  []models.Maintenance
	ErrorLog []models.BulkUploadError
}

// ProcessMaintenanceUpload runs the full pipeline for a workshop register
// sheet: locate the data start below the title rows, decode positionally,
// resolve callsigns, batch commit, then stamp service milestones on the
// vehicles whose jobs arrived already Completed.
func ProcessMaintenanceUpload(buf []byte, repo MaintenanceBulkRepo, createdBy string) (*MaintenanceUploadResult, error) {
	wb, err := ingest.OpenWorkbook(buf)
	if err != nil {
		return nil, err
	}

	refs, err := repo.ListVehicleRefs()
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle directory: %w", err)
	}
	dir := ingest.NewDirectory(refs)

	rows := wb.Rows()
	result := &MaintenanceUploadResult{}
	outcome := &result.Outcome

	start := FindMaintenanceDataStart(rows)
	if start < 0 {
		return result, ingest.ErrNoValidRows
	}

	var valid []models.Maintenance
	// Vehicles owed a milestone stamp after the commit. A vehicle with both a
	// tire job and a plain service in the same sheet gets both stamps.
	type milestone struct{ tire, service bool }
	milestones := make(map[uuid.UUID]milestone)

	for i, row := range rows[start:] {
		rowNum := start + i + 1 // 1-based sheet row

		job, errType, reason := BuildMaintenanceRow(row, rowNum, dir)
		if reason != "" {
			outcome.Skip(reason)
			result.ErrorLog = append(result.ErrorLog, uploadError("maintenance", rowNum,
				ingest.CleanString(row.Cell(colCallsign)), reason, errType, createdBy))
			continue
		}

		valid = append(valid, job)
		if job.Status == models.MaintenanceCompleted {
			m := milestones[job.VehicleID]
			if IsTireJob(job.Type) {
				m.tire = true
			} else {
				m.service = true
			}
			milestones[job.VehicleID] = m
		}
	}

	// Persist the skip log before the commit so a fully rejected sheet still
	// leaves an audit trail.
	if len(result.ErrorLog) > 0 {
		if err := repo.LogBulkUploadErrors(result.ErrorLog); err != nil {
			config.Logger.Warn("Failed to log skipped upload rows", zap.Error(err))
		}
	}

	if len(valid) == 0 {
		return result, ingest.ErrNoValidRows
	}

	created, err := repo.BulkCreateMaintenance(valid)
	if err != nil {
		return result, fmt.Errorf("failed to insert maintenance jobs: %w", err)
	}
	outcome.Created = int(created)
	result.Created = valid[:created]

	for vehicleID, m := range milestones {
		if m.tire {
			if err := repo.ApplyServiceMilestone(vehicleID, true); err != nil {
				config.Logger.Warn("Failed to stamp tire-change milestone",
					zap.String("vehicle_id", vehicleID.String()), zap.Error(err))
			}
		}
		if m.service {
			if err := repo.ApplyServiceMilestone(vehicleID, false); err != nil {
				config.Logger.Warn("Failed to stamp service milestone",
					zap.String("vehicle_id", vehicleID.String()), zap.Error(err))
			}
		}
	}

	return result, nil
}

func uploadError(domain string, rowNum int, callsign, reason string, errType models.BulkUploadErrorType, createdBy string) models.BulkUploadError {
	return models.BulkUploadError{
		ID:        uuid.New(),
		Domain:    domain,
		RowNumber: rowNum,
		Callsign:  callsign,
		Reason:    reason,
		ErrorType: errType,
		AddedVia:  models.BulkAddedViaType,
		CreatedBy: createdBy,
	}
}
