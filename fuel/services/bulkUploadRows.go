package services

import (
	"fmt"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fuelColumns maps the refueling sheet headers onto canonical fields. The
// daily sheets come from the fuel contractor, so the spellings drift more
// than the other domains.
var fuelColumns = ingest.Dictionary(map[string][]string{
	"date":                   {"refueling date", "fuel date"},
	"callsign":               {"amb no", "amb no.", "amb #", "call sign", "call-sign", "vehicle callsign", "vehicle"},
	"slipNo":                 {"slip no", "slip no.", "slip #"},
	"currentRefuelingKM":     {"current refueling km", "current km", "odometer", "meter reading"},
	"totalKM":                {"total km"},
	"trackerVerifiedKM":      {"tracker verified km", "tracker km"},
	"currentRefuelingLiters": {"current refueling liters", "current refueling litres", "liters", "litres", "qty"},
	"rate":                   {"rate/ltr", "rate per liter", "rate per litre"},
	"amountRs":               {"amount rs", "amount (rs)", "amount"},
	"refuelingTime":          {"refueling time", "time"},
	"evoEmpCode":             {"evo emp code", "evo code"},
	"evoName":                {"evo name", "evo"},
	"scName":                 {"sc name", "sc"},
	"scName2":                {"sc name 2", "sc name2"},
})

// FuelTemplateHeaders is the canonical header row of the downloadable
// template. Must stay aligned with fuelColumns.
var FuelTemplateHeaders = []string{
	"date", "callsign", "slipNo", "currentRefuelingKM", "totalKM",
	"trackerVerifiedKM", "currentRefuelingLiters", "rate", "amountRs",
	"refuelingTime", "evoEmpCode", "evoName", "scName", "scName2",
}

// FuelTemplateSample is the single example row emitted with the template.
var FuelTemplateSample = []interface{}{
	"1-Jun-25", "HY-999", "48213", 152340, 260, 255, 42.5, 272.89, 11597.83,
	"14:30", "EVO-112", "Ahmed Raza", "Bilal Khan", "",
}

// MapFuelRows decodes the uploaded workbook in header-mapped mode.
func MapFuelRows(wb *ingest.Workbook) []ingest.Record {
	return wb.MappedRows(fuelColumns)
}

// BuildFuelRow validates one mapped row, resolves its vehicle and shapes it
// into a FuelRecord. Row-level problems come back as a reason string plus the
// error type to log; they never abort the batch. With allowFallback set,
// unresolved callsigns attach to the directory's first vehicle instead of
// being skipped.
func BuildFuelRow(rec ingest.Record, rowNum int, dir *ingest.Directory, allowFallback bool) (models.FuelRecord, models.BulkUploadErrorType, string) {
	dateRaw := ingest.CleanString(rec["date"])
	callsign := ingest.CleanString(rec["callsign"])

	if dateRaw == "" || callsign == "" {
		return models.FuelRecord{}, models.MissingDataErrorType,
			fmt.Sprintf("row %d: missing required fields (date, callsign)", rowNum)
	}

	date, err := ingest.ParseDate(dateRaw)
	if err != nil {
		return models.FuelRecord{}, models.InvalidDateErrorType,
			fmt.Sprintf("row %d: unparseable date %q", rowNum, dateRaw)
	}

	vehicle, ok := dir.Resolve(callsign)
	if !ok {
		if !allowFallback {
			return models.FuelRecord{}, models.UnknownCallsignType,
				fmt.Sprintf("row %d: no vehicle matches callsign %q", rowNum, callsign)
		}
		vehicle, ok = dir.First()
		if !ok {
			return models.FuelRecord{}, models.UnknownCallsignType,
				fmt.Sprintf("row %d: no vehicles registered to fall back to", rowNum)
		}
	}

	record := models.FuelRecord{
		ID:                     uuid.New(),
		VehicleID:              vehicle.ID,
		Date:                   date,
		AmbNo:                  callsign,
		SlipNo:                 ingest.CleanString(rec["slipNo"]),
		CurrentRefuelingKM:     ingest.ParseNumber(rec["currentRefuelingKM"]),
		TotalKM:                ingest.ParseNumber(rec["totalKM"]),
		TrackerVerifiedKM:      ingest.ParseNumber(rec["trackerVerifiedKM"]),
		CurrentRefuelingLiters: ingest.ParseNumber(rec["currentRefuelingLiters"]),
		Rate:                   decimal.NewFromFloat(ingest.ParseNumber(rec["rate"])),
		AmountRs:               decimal.NewFromFloat(ingest.ParseNumber(rec["amountRs"])),
		RefuelingTime:          ingest.ParseClock(rec["refuelingTime"]),
		EvoEmpCode:             ingest.CleanString(rec["evoEmpCode"]),
		EvoName:                ingest.CleanString(rec["evoName"]),
		ScName:                 ingest.CleanString(rec["scName"]),
		ScName2:                ingest.CleanString(rec["scName2"]),
		AddedVia:               string(models.BulkAddedViaType),
	}
	return record, "", ""
}
