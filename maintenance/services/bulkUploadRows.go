package services

import (
	"fmt"
	"strings"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Maintenance sheets come from workshop registers with merged title rows and
// no reliable header, so they decode positionally. The column order is the
// register's fixed layout.
const (
	colDateIn = iota
	colCallsign
	colCategory
	colType
	colStatus
	colTechnician
	colDescription
	colElectricalCost
	colFabricationCost
	colInsuranceCost
	colOtherCost
	colPartsUsed
)

// MaintenanceTemplateHeaders is the canonical header row of the downloadable
// template. Order must stay aligned with the positional column constants.
var MaintenanceTemplateHeaders = []string{
	"dateIn", "callsign", "category", "type", "status", "technician",
	"description", "electricalCost", "fabricationCost", "insuranceCost",
	"otherCost", "partsUsed",
}

// MaintenanceTemplateSample is the single example row emitted with the template.
var MaintenanceTemplateSample = []interface{}{
	"1-Jun-25", "HY-999", "Corrective", "Tire Replacement", "Completed", "Imran Ali",
	"Front tires replaced", 0, 1500, 0, 8400, "2x Bridgestone 195R15",
}

// FindMaintenanceDataStart locates the first data row of a workshop register
// sheet, skipping the free-text title rows above the table.
func FindMaintenanceDataStart(rows []ingest.Row) int {
	return ingest.FindDataStart(rows, "HY", "KY", "AMB")
}

// BuildMaintenanceRow validates one positional row, resolves its vehicle and
// shapes it into a Maintenance job. Row-level problems come back as a reason
// string plus the error type to log; they never abort the batch.
func BuildMaintenanceRow(row ingest.Row, rowNum int, dir *ingest.Directory) (models.Maintenance, models.BulkUploadErrorType, string) {
	dateRaw := ingest.CleanString(row.Cell(colDateIn))
	callsign := ingest.CleanString(row.Cell(colCallsign))
	category := ingest.CleanString(row.Cell(colCategory))
	jobType := ingest.CleanString(row.Cell(colType))

	var missing []string
	if dateRaw == "" {
		missing = append(missing, "dateIn")
	}
	if callsign == "" {
		missing = append(missing, "callsign")
	}
	if category == "" {
		missing = append(missing, "category")
	}
	if jobType == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return models.Maintenance{}, models.MissingDataErrorType,
			fmt.Sprintf("row %d: missing required fields (%s)", rowNum, strings.Join(missing, ", "))
	}

	dateIn, err := ingest.ParseDate(dateRaw)
	if err != nil {
		return models.Maintenance{}, models.InvalidDateErrorType,
			fmt.Sprintf("row %d: unparseable date %q", rowNum, dateRaw)
	}

	vehicle, ok := dir.Resolve(callsign)
	if !ok {
		return models.Maintenance{}, models.UnknownCallsignType,
			fmt.Sprintf("row %d: no vehicle matches callsign %q", rowNum, callsign)
	}

	job := models.Maintenance{
		ID:              uuid.New(),
		VehicleID:       vehicle.ID,
		Category:        models.MaintenanceCategory(category),
		Type:            jobType,
		DateIn:          dateIn,
		Technician:      ingest.CleanString(row.Cell(colTechnician)),
		Description:     ingest.CleanString(row.Cell(colDescription)),
		PartsUsed:       ingest.CleanString(row.Cell(colPartsUsed)),
		ElectricalCost:  decimal.NewFromFloat(ingest.ParseNumber(row.Cell(colElectricalCost))),
		FabricationCost: decimal.NewFromFloat(ingest.ParseNumber(row.Cell(colFabricationCost))),
		InsuranceCost:   decimal.NewFromFloat(ingest.ParseNumber(row.Cell(colInsuranceCost))),
		OtherCost:       decimal.NewFromFloat(ingest.ParseNumber(row.Cell(colOtherCost))),
		AddedVia:        string(models.BulkAddedViaType),
	}

	if status := ingest.CleanString(row.Cell(colStatus)); status != "" {
		job.Status = models.MaintenanceStatus(status)
	} else {
		job.Status = models.MaintenanceScheduled
	}

	return job, "", ""
}

// IsTireJob reports whether a maintenance type describes tire work; such
// completed jobs set the tire-change milestone instead of the service one.
func IsTireJob(jobType string) bool {
	lower := strings.ToLower(jobType)
	return strings.Contains(lower, "tire") || strings.Contains(lower, "tyre")
}
