package services

import (
	"fmt"
	"strings"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
)

// inspectionColumns maps inspection sheet headers onto canonical fields.
var inspectionColumns = ingest.Dictionary(map[string][]string{
	"date":                {"inspection date"},
	"callsign":            {"call sign", "call-sign", "amb no", "vehicle callsign", "vehicle"},
	"status":              {"inspection status", "result"},
	"technician":          {"inspector", "inspected by"},
	"type":                {"inspection type"},
	"notes":               {"remarks", "comments"},
	"overallRating":       {"overall rating", "rating"},
	"location":            {"station", "site"},
	"currentMeterReading": {"current meter reading", "meter reading", "odometer", "current km"},
})

// InspectionTemplateHeaders is the canonical header row of the downloadable
// template. Must stay aligned with inspectionColumns.
var InspectionTemplateHeaders = []string{
	"date", "callsign", "status", "technician", "type",
	"notes", "overallRating", "location", "currentMeterReading",
}

// InspectionTemplateSample is the single example row emitted with the template.
var InspectionTemplateSample = []interface{}{
	"2025-06-01", "HY-999", "Passed", "Imran Ali", "Preventive Maintenance",
	"Brakes replaced during inspection", 8.5, "Hyderabad", 152340,
}

// MapInspectionRows decodes the uploaded workbook in header-mapped mode.
func MapInspectionRows(wb *ingest.Workbook) []ingest.Record {
	return wb.MappedRows(inspectionColumns)
}

// BuildInspectionRow validates one mapped row, resolves its vehicle and
// shapes it into an Inspection. Row-level problems come back as a reason
// string plus the error type to log; they never abort the batch.
func BuildInspectionRow(rec ingest.Record, rowNum int, dir *ingest.Directory) (models.Inspection, models.BulkUploadErrorType, string) {
	dateRaw := ingest.CleanString(rec["date"])
	callsign := ingest.CleanString(rec["callsign"])
	technician := ingest.CleanString(rec["technician"])
	status := ingest.CleanString(rec["status"])

	var missing []string
	if dateRaw == "" {
		missing = append(missing, "date")
	}
	if callsign == "" {
		missing = append(missing, "callsign")
	}
	if technician == "" {
		missing = append(missing, "technician")
	}
	if status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return models.Inspection{}, models.MissingDataErrorType,
			fmt.Sprintf("row %d: missing required fields (%s)", rowNum, strings.Join(missing, ", "))
	}

	date, err := ingest.ParseDate(dateRaw)
	if err != nil {
		return models.Inspection{}, models.InvalidDateErrorType,
			fmt.Sprintf("row %d: unparseable date %q", rowNum, dateRaw)
	}

	vehicle, ok := dir.Resolve(callsign)
	if !ok {
		return models.Inspection{}, models.UnknownCallsignType,
			fmt.Sprintf("row %d: no vehicle matches callsign %q", rowNum, callsign)
	}

	inspection := models.Inspection{
		ID:         uuid.New(),
		VehicleID:  vehicle.ID,
		Date:       date,
		Status:     models.InspectionStatus(status),
		Technician: technician,
		Notes:      ingest.CleanString(rec["notes"]),
		Location:   ingest.CleanString(rec["location"]),
		AddedVia:   string(models.BulkAddedViaType),
	}

	if t := ingest.CleanString(rec["type"]); t != "" {
		inspection.Type = t
	} else {
		inspection.Type = "Preventive Maintenance"
	}
	if rating, err := ingest.ParseStrictNumber(rec["overallRating"]); err == nil {
		inspection.OverallRating = &rating
	}
	if km, err := ingest.ParseStrictNumber(rec["currentMeterReading"]); err == nil && km > 0 {
		inspection.CurrentMeterReading = &km
	}

	return inspection, "", ""
}
