package services

import (
	"fmt"
	"strings"

	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VehicleBulkRepo is the slice of the vehicle repository the upload pipeline
// needs; narrow on purpose so tests can stub it.
type VehicleBulkRepo interface {
	FindExistingCallsigns(callsigns []string) ([]string, error)
	BulkCreateVehicles(vehicles []models.Vehicle) (int64, error)
	LogBulkUploadErrors(rows []models.BulkUploadError) error
}

// VehicleUploadResult carries the outcome plus the vehicles that were
// actually committed, so the caller can reindex them.
type VehicleUploadResult struct {
	Outcome  ingest.Outcome
	Created  []models.Vehicle
	ErrorLog []models.BulkUploadError
}

// ProcessVehicleUpload runs the full pipeline for a vehicle spreadsheet:
// decode, normalize, duplicate screening, batch commit. The batch insert is
// best-effort; a duplicate callsign hitting the unique index cannot abort its
// sibling rows.
func ProcessVehicleUpload(buf []byte, repo VehicleBulkRepo, createdBy string) (*VehicleUploadResult, error) {
	wb, err := ingest.OpenWorkbook(buf)
	if err != nil {
		return nil, err
	}

	records := MapVehicleRows(wb)
	result := &VehicleUploadResult{}
	outcome := &result.Outcome

	var valid []models.Vehicle
	seenInFile := make(map[string]struct{})

	for i, rec := range records {
		rowNum := i + 2 // 1-based, after the header row

		vehicle, reason := BuildVehicleRow(rec, rowNum)
		if reason != "" {
			outcome.Skip(reason)
			result.ErrorLog = append(result.ErrorLog, uploadError("vehicles", rowNum,
				ingest.CleanString(rec["callsign"]), reason, models.MissingDataErrorType, createdBy))
			continue
		}

		// Duplicates inside the uploaded file itself.
		if _, dup := seenInFile[vehicle.Callsign]; dup {
			reason := fmt.Sprintf("row %d: duplicate callsign %s in the uploaded file", rowNum, vehicle.Callsign)
			outcome.Skip(reason)
			result.ErrorLog = append(result.ErrorLog, uploadError("vehicles", rowNum,
				vehicle.Callsign, reason, models.DuplicateErrorType, createdBy))
			continue
		}
		seenInFile[vehicle.Callsign] = struct{}{}

		valid = append(valid, vehicle)
	}

	// Screen against callsigns already persisted. This pre-check is an
	// optimization for readable errors; the unique index is the real guard.
	if len(valid) > 0 {
		var callsigns []string
		for _, v := range valid {
			callsigns = append(callsigns, v.Callsign)
		}
		existing, err := repo.FindExistingCallsigns(callsigns)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing callsigns: %w", err)
		}

		existingSet := make(map[string]struct{}, len(existing))
		for _, cs := range existing {
			existingSet[strings.ToUpper(cs)] = struct{}{}
		}

		filtered := valid[:0]
		for _, v := range valid {
			if _, taken := existingSet[v.Callsign]; taken {
				reason := fmt.Sprintf("callsign %s already exists", v.Callsign)
				outcome.Skip(reason)
				result.ErrorLog = append(result.ErrorLog, uploadError("vehicles", 0,
					v.Callsign, reason, models.DuplicateErrorType, createdBy))
				continue
			}
			filtered = append(filtered, v)
		}
		valid = filtered
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

	created, err := repo.BulkCreateVehicles(valid)
	if err != nil {
		return result, fmt.Errorf("failed to insert vehicles: %w", err)
	}
	outcome.Created = int(created)

	// Rows silently dropped by the unique-index backstop (a concurrent upload
	// winning the race) are folded into the skipped count.
	if int(created) < len(valid) {
		lost := len(valid) - int(created)
		for i := 0; i < lost; i++ {
			outcome.Skip("callsign already exists (inserted concurrently)")
		}
	}
	result.Created = valid[:created]

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
