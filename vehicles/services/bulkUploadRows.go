package services

import (
	"fmt"
	"strings"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
)

// vehicleColumns maps header spellings seen in the wild onto the canonical
// template fields. MapHeader lower-cases and trims before the lookup, so only
// distinct spellings need listing.
var vehicleColumns = ingest.Dictionary(map[string][]string{
	"name":           {"vehicle name", "vehicle"},
	"callsign":       {"call sign", "call-sign", "amb sign #", "amb no"},
	"model":          {"vehicle model", "make/model"},
	"year":           {"model year", "year of manufacture"},
	"mileage":        {"odometer", "current km"},
	"status":         {"fleet status"},
	"chassisNo":      {"chassis no", "chassis #", "chassis number"},
	"engineNo":       {"engine no", "engine #", "engine number"},
	"registrationNo": {"registration no", "reg#", "reg no", "registration number"},
	"fuelType":       {"fuel type", "fuel"},
	"transmission":   {},
	"engineCapacity": {"engine capacity", "cc"},
	"registeredCity": {"registered city", "station", "city"},
	"ownerName":      {"owner name", "owner"},
})

// VehicleTemplateHeaders is the canonical header row of the downloadable
// template. Must stay aligned with vehicleColumns.
var VehicleTemplateHeaders = []string{
	"name", "callsign", "model", "year", "mileage", "status",
	"chassisNo", "engineNo", "registrationNo", "fuelType",
	"transmission", "engineCapacity", "registeredCity", "ownerName",
}

// VehicleTemplateSample is the single example row emitted with the template.
var VehicleTemplateSample = []interface{}{
	"Ambulances", "HY-999", "Toyota Hiace", 2022, 15000, "OnRoad Fleet",
	"CHASSIS12345", "ENGINE54321", "REG-001", "Diesel",
	"Manual", "2800", "Hyderabad", "SIEHS",
}

// MapVehicleRows decodes the uploaded workbook in header-mapped mode.
func MapVehicleRows(wb *ingest.Workbook) []ingest.Record {
	return wb.MappedRows(vehicleColumns)
}

// BuildVehicleRow validates one mapped row and shapes it into a Vehicle ready
// for the commit batch. Row-level problems come back as a reason string; they
// never abort the batch.
func BuildVehicleRow(rec ingest.Record, rowNum int) (models.Vehicle, string) {
	name := ingest.CleanString(rec["name"])
	callsign := ingest.CleanString(rec["callsign"])
	model := ingest.CleanString(rec["model"])
	yearRaw := ingest.CleanString(rec["year"])

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if callsign == "" {
		missing = append(missing, "callsign")
	}
	if model == "" {
		missing = append(missing, "model")
	}
	if yearRaw == "" {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return models.Vehicle{}, fmt.Sprintf("row %d: missing required fields (%s)", rowNum, strings.Join(missing, ", "))
	}

	year, err := ingest.ParseStrictNumber(yearRaw)
	if err != nil {
		return models.Vehicle{}, fmt.Sprintf("row %d: year %q is not a number", rowNum, yearRaw)
	}

	vehicle := models.Vehicle{
		ID:             uuid.New(),
		Name:           name,
		Callsign:       strings.ToUpper(callsign),
		Model:          model,
		Year:           int(year),
		Mileage:        ingest.ParseNumber(rec["mileage"]),
		ChassisNo:      ingest.CleanString(rec["chassisNo"]),
		EngineNo:       ingest.CleanString(rec["engineNo"]),
		RegistrationNo: ingest.CleanString(rec["registrationNo"]),
		EngineCapacity: ingest.CleanString(rec["engineCapacity"]),
		RegisteredCity: ingest.CleanString(rec["registeredCity"]),
		OwnerName:      ingest.CleanString(rec["ownerName"]),
		AddedVia:       string(models.BulkAddedViaType),
	}

	if status := ingest.CleanString(rec["status"]); status != "" {
		vehicle.Status = models.VehicleStatus(status)
	} else {
		vehicle.Status = models.OnRoadStatus
	}
	if fuel := ingest.CleanString(rec["fuelType"]); fuel != "" {
		vehicle.FuelType = fuel
	} else {
		vehicle.FuelType = "Petrol"
	}
	if tr := ingest.CleanString(rec["transmission"]); tr != "" {
		vehicle.Transmission = tr
	} else {
		vehicle.Transmission = "Manual"
	}

	return vehicle, ""
}
