package services

import (
	"fmt"

	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InspectionBulkRepo is the slice of the inspection repository the upload
// pipeline needs.
type InspectionBulkRepo interface {
	ListVehicleRefs() ([]ingest.VehicleRef, error)
	BulkCreateInspections(inspections []models.Inspection) (int64, error)
	UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

// InspectionUploadResult carries the outcome plus the committed records.
type InspectionUploadResult struct {
	Outcome  ingest.Outcome
	Created  []models.Inspection
	ErrorLog []models.BulkUploadError
}

// ProcessInspectionUpload runs the full pipeline for an inspection
// spreadsheet: decode, normalize, resolve callsigns, batch commit, then
// propagate the latest meter reading per vehicle onto the vehicle row.
func ProcessInspectionUpload(buf []byte, repo InspectionBulkRepo, createdBy string) (*InspectionUploadResult, error) {
	wb, err := ingest.OpenWorkbook(buf)
	if err != nil {
		return nil, err
	}

	refs, err := repo.ListVehicleRefs()
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle directory: %w", err)
	}
	dir := ingest.NewDirectory(refs)

	records := MapInspectionRows(wb)
	result := &InspectionUploadResult{}
	outcome := &result.Outcome

	var valid []models.Inspection
	// Latest meter reading per vehicle, row order deciding ties.
	latestKM := make(map[uuid.UUID]float64)

	for i, rec := range records {
		rowNum := i + 2

		inspection, errType, reason := BuildInspectionRow(rec, rowNum, dir)
		if reason != "" {
			outcome.Skip(reason)
			result.ErrorLog = append(result.ErrorLog, uploadError("inspections", rowNum,
				ingest.CleanString(rec["callsign"]), reason, errType, createdBy))
			continue
		}

		valid = append(valid, inspection)
		if inspection.CurrentMeterReading != nil && *inspection.CurrentMeterReading > 0 {
			latestKM[inspection.VehicleID] = *inspection.CurrentMeterReading
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

	created, err := repo.BulkCreateInspections(valid)
	if err != nil {
		return result, fmt.Errorf("failed to insert inspections: %w", err)
	}
	outcome.Created = int(created)
	result.Created = valid[:created]

	for vehicleID, km := range latestKM {
		if err := repo.UpdateVehicleMileage(vehicleID, km); err != nil {
			config.Logger.Warn("Failed to propagate inspection meter reading",
				zap.String("vehicle_id", vehicleID.String()), zap.Error(err))
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
