package services

import (
	"bytes"
	"errors"
	"testing"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type stubFuelRepo struct {
	refs         []ingest.VehicleRef
	created      []models.FuelRecord
	loggedErrors []models.BulkUploadError
	mileage      map[uuid.UUID]float64
}

func newStubFuelRepo(refs ...ingest.VehicleRef) *stubFuelRepo {
	return &stubFuelRepo{refs: refs, mileage: make(map[uuid.UUID]float64)}
}

func (s *stubFuelRepo) ListVehicleRefs() ([]ingest.VehicleRef, error) {
	return s.refs, nil
}

func (s *stubFuelRepo) BulkCreateFuelRecords(records []models.FuelRecord) (int64, error) {
	s.created = records
	return int64(len(records)), nil
}

func (s *stubFuelRepo) UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error {
	s.mileage[vehicleID] = mileage
	return nil
}

func (s *stubFuelRepo) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	s.loggedErrors = append(s.loggedErrors, rows...)
	return nil
}

func fuelSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]interface{}{{"date", "callsign", "currentRefuelingKM", "currentRefuelingLiters", "rate", "amountRs", "refuelingTime"}}, rows...)
	for i, row := range all {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestProcessFuelUploadResolvesAndPropagates(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	hy296 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-296"}
	repo := newStubFuelRepo(hy295, hy296)

	buf := fuelSheet(t, [][]interface{}{
		{"1-Jun-25", "hy-295", 152000, 40, "272.89", "10915.60", "0.5"},
		{"2-Jun-25", "HY-295", 152340, 42, "272.89", "11461.38", "14:30"},
		{"2-Jun-25", "HY-296", 98000, 35, "272.89", "9551.15", ""},
	})

	result, err := ProcessFuelUpload(buf, repo, "ops@fleet.test", false)
	if err != nil {
		t.Fatalf("ProcessFuelUpload: %v", err)
	}
	if result.Outcome.Created != 3 || result.Outcome.Skipped != 0 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}

	// Last row for HY-295 wins the mileage propagation.
	if got := repo.mileage[hy295.ID]; got != 152340 {
		t.Fatalf("HY-295 mileage = %v, want 152340", got)
	}
	if got := repo.mileage[hy296.ID]; got != 98000 {
		t.Fatalf("HY-296 mileage = %v, want 98000", got)
	}

	if repo.created[0].RefuelingTime != "12:00" {
		t.Fatalf("fractional-day time = %q, want 12:00", repo.created[0].RefuelingTime)
	}
	if repo.created[0].VehicleID != hy295.ID {
		t.Fatal("callsign resolution attached the wrong vehicle")
	}
}

func TestProcessFuelUploadSkipsUnknownCallsign(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	repo := newStubFuelRepo(hy295)

	buf := fuelSheet(t, [][]interface{}{
		{"1-Jun-25", "HY-999", 5000, 10, "", "", ""},
		{"1-Jun-25", "HY-295", 152000, 40, "", "", ""},
	})

	result, err := ProcessFuelUpload(buf, repo, "ops@fleet.test", false)
	if err != nil {
		t.Fatalf("ProcessFuelUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 1 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if repo.loggedErrors[0].ErrorType != models.UnknownCallsignType {
		t.Fatalf("error type = %q, want unknown callsign", repo.loggedErrors[0].ErrorType)
	}
	if _, touched := repo.mileage[hy295.ID]; !touched {
		t.Fatal("known row should still propagate mileage")
	}
}

func TestProcessFuelUploadFallbackOptIn(t *testing.T) {
	first := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-100"}
	repo := newStubFuelRepo(first, ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-200"})

	buf := fuelSheet(t, [][]interface{}{
		{"1-Jun-25", "HY-999", 5000, 10, "", "", ""},
	})

	result, err := ProcessFuelUpload(buf, repo, "ops@fleet.test", true)
	if err != nil {
		t.Fatalf("ProcessFuelUpload: %v", err)
	}
	if result.Outcome.Created != 1 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if repo.created[0].VehicleID != first.ID {
		t.Fatal("fallback should attach to the first registered vehicle")
	}
}

func TestProcessFuelUploadInvalidDate(t *testing.T) {
	repo := newStubFuelRepo(ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"})

	buf := fuelSheet(t, [][]interface{}{
		{"not a date", "HY-295", 5000, 10, "", "", ""},
	})

	_, err := ProcessFuelUpload(buf, repo, "ops@fleet.test", false)
	if !errors.Is(err, ingest.ErrNoValidRows) {
		t.Fatalf("got %v, want ErrNoValidRows", err)
	}
	if len(repo.loggedErrors) != 1 || repo.loggedErrors[0].ErrorType != models.InvalidDateErrorType {
		t.Fatalf("unexpected error log: %+v", repo.loggedErrors)
	}
}

func TestProcessFuelUploadZeroKMDoesNotPropagate(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295", Mileage: 152000}
	repo := newStubFuelRepo(hy295)

	buf := fuelSheet(t, [][]interface{}{
		{"1-Jun-25", "HY-295", 0, 40, "", "", ""},
	})

	result, err := ProcessFuelUpload(buf, repo, "ops@fleet.test", false)
	if err != nil {
		t.Fatalf("ProcessFuelUpload: %v", err)
	}
	if result.Outcome.Created != 1 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if _, touched := repo.mileage[hy295.ID]; touched {
		t.Fatal("a zero odometer cell must not overwrite the vehicle mileage")
	}
}

func TestFuelTemplateRoundTrip(t *testing.T) {
	header := make(ingest.Row, len(FuelTemplateHeaders))
	copy(header, FuelTemplateHeaders)

	columns := ingest.MapHeader(header, fuelColumns)
	if len(columns) != len(FuelTemplateHeaders) {
		t.Fatalf("only %d of %d template headers decode", len(columns), len(FuelTemplateHeaders))
	}
	if len(FuelTemplateSample) != len(FuelTemplateHeaders) {
		t.Fatal("sample row length must match the header row")
	}
}
