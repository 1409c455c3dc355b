package services

import (
	"fmt"

	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FuelBulkRepo is the slice of the fuel repository the upload pipeline needs.
type FuelBulkRepo interface {
	ListVehicleRefs() ([]ingest.VehicleRef, error)
	BulkCreateFuelRecords(records []models.FuelRecord) (int64, error)
	UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

// FuelUploadResult carries the outcome plus the committed records.
type FuelUploadResult struct {
	Outcome  ingest.Outcome
	Created  []models.FuelRecord
	ErrorLog []models.BulkUploadError
}

// ProcessFuelUpload runs the full pipeline for a refueling spreadsheet:
// decode, normalize, resolve callsigns against the fleet, batch commit, then
// propagate the latest odometer reading per vehicle onto the vehicle row.
// Rows whose callsign matches no vehicle are skipped unless allowFallback is
// set, which attaches them to the first registered vehicle instead.
func ProcessFuelUpload(buf []byte, repo FuelBulkRepo, createdBy string, allowFallback bool) (*FuelUploadResult, error) {
	wb, err := ingest.OpenWorkbook(buf)
	if err != nil {
		return nil, err
	}

	refs, err := repo.ListVehicleRefs()
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle directory: %w", err)
	}
	dir := ingest.NewDirectory(refs)

	records := MapFuelRows(wb)
	result := &FuelUploadResult{}
	outcome := &result.Outcome

	var valid []models.FuelRecord
	// Latest odometer per vehicle, row order deciding ties. Only readings
	// above zero count; a blank or zero cell must not wipe the mileage.
	latestKM := make(map[uuid.UUID]float64)

	for i, rec := range records {
		rowNum := i + 2

		record, errType, reason := BuildFuelRow(rec, rowNum, dir, allowFallback)
		if reason != "" {
			outcome.Skip(reason)
			result.ErrorLog = append(result.ErrorLog, uploadError("fuel", rowNum,
				ingest.CleanString(rec["callsign"]), reason, errType, createdBy))
			continue
		}

		valid = append(valid, record)
		if record.CurrentRefuelingKM > 0 {
			latestKM[record.VehicleID] = record.CurrentRefuelingKM
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

	created, err := repo.BulkCreateFuelRecords(valid)
	if err != nil {
		return result, fmt.Errorf("failed to insert fuel records: %w", err)
	}
	outcome.Created = int(created)
	result.Created = valid[:created]

	for vehicleID, km := range latestKM {
		if err := repo.UpdateVehicleMileage(vehicleID, km); err != nil {
			config.Logger.Warn("Failed to propagate refueling mileage",
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
