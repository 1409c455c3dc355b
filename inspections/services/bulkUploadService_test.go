package services

import (
	"bytes"
	"testing"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type stubInspectionRepo struct {
	refs         []ingest.VehicleRef
	created      []models.Inspection
	loggedErrors []models.BulkUploadError
	mileage      map[uuid.UUID]float64
}

func newStubInspectionRepo(refs ...ingest.VehicleRef) *stubInspectionRepo {
	return &stubInspectionRepo{refs: refs, mileage: make(map[uuid.UUID]float64)}
}

func (s *stubInspectionRepo) ListVehicleRefs() ([]ingest.VehicleRef, error) {
	return s.refs, nil
}

func (s *stubInspectionRepo) BulkCreateInspections(inspections []models.Inspection) (int64, error) {
	s.created = inspections
	return int64(len(inspections)), nil
}

func (s *stubInspectionRepo) UpdateVehicleMileage(vehicleID uuid.UUID, mileage float64) error {
	s.mileage[vehicleID] = mileage
	return nil
}

func (s *stubInspectionRepo) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	s.loggedErrors = append(s.loggedErrors, rows...)
	return nil
}

func inspectionSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]interface{}{{"date", "callsign", "status", "technician", "currentMeterReading", "overallRating"}}, rows...)
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

func TestProcessInspectionUploadPropagatesMeterReading(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	repo := newStubInspectionRepo(hy295)

	buf := inspectionSheet(t, [][]interface{}{
		{"2025-06-01", "HY-295", "Passed", "Imran Ali", 152000, 8.5},
		{"2025-06-15", "HY-295", "Passed", "Imran Ali", 152340, 9.0},
	})

	result, err := ProcessInspectionUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessInspectionUpload: %v", err)
	}
	if result.Outcome.Created != 2 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if got := repo.mileage[hy295.ID]; got != 152340 {
		t.Fatalf("propagated mileage = %v, want 152340 (last row wins)", got)
	}
	if repo.created[0].Status != models.InspectionPassed {
		t.Fatalf("status = %q, want Passed", repo.created[0].Status)
	}
	if repo.created[0].OverallRating == nil || *repo.created[0].OverallRating != 8.5 {
		t.Fatalf("rating not decoded: %+v", repo.created[0].OverallRating)
	}
}

func TestProcessInspectionUploadRequiredFields(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	repo := newStubInspectionRepo(hy295)

	buf := inspectionSheet(t, [][]interface{}{
		{"2025-06-01", "HY-295", "Passed", "", "", ""},   // missing technician
		{"2025-06-01", "HY-999", "Passed", "Imran", "", ""}, // unknown callsign
		{"2025-06-02", "HY-295", "Failed", "Imran", "", ""},
	})

	result, err := ProcessInspectionUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessInspectionUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 2 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if repo.loggedErrors[0].ErrorType != models.MissingDataErrorType {
		t.Fatalf("first error type = %q", repo.loggedErrors[0].ErrorType)
	}
	if repo.loggedErrors[1].ErrorType != models.UnknownCallsignType {
		t.Fatalf("second error type = %q", repo.loggedErrors[1].ErrorType)
	}
	if _, touched := repo.mileage[hy295.ID]; touched {
		t.Fatal("no meter readings were present; mileage must stay untouched")
	}
}

func TestInspectionTemplateRoundTrip(t *testing.T) {
	header := make(ingest.Row, len(InspectionTemplateHeaders))
	copy(header, InspectionTemplateHeaders)

	columns := ingest.MapHeader(header, inspectionColumns)
	if len(columns) != len(InspectionTemplateHeaders) {
		t.Fatalf("only %d of %d template headers decode", len(columns), len(InspectionTemplateHeaders))
	}
	if len(InspectionTemplateSample) != len(InspectionTemplateHeaders) {
		t.Fatal("sample row length must match the header row")
	}
}
