package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fleet-backend/db/models"
	"fleet-backend/ingest"

	"github.com/xuri/excelize/v2"
)

type stubVehicleRepo struct {
	existing      []string
	created       []models.Vehicle
	loggedErrors  []models.BulkUploadError
	insertedCount int64 // -1 means "all rows"
}

func (s *stubVehicleRepo) FindExistingCallsigns(callsigns []string) ([]string, error) {
	return s.existing, nil
}

func (s *stubVehicleRepo) BulkCreateVehicles(vehicles []models.Vehicle) (int64, error) {
	s.created = vehicles
	if s.insertedCount >= 0 {
		return s.insertedCount, nil
	}
	return int64(len(vehicles)), nil
}

func (s *stubVehicleRepo) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	s.loggedErrors = append(s.loggedErrors, rows...)
	return nil
}

func newStubVehicleRepo() *stubVehicleRepo {
	return &stubVehicleRepo{insertedCount: -1}
}

func vehicleSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]interface{}{{"name", "callsign", "model", "year", "mileage"}}, rows...)
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

func TestProcessVehicleUploadHappyPath(t *testing.T) {
	repo := newStubVehicleRepo()
	buf := vehicleSheet(t, [][]interface{}{
		{"Ambulances", "hy-295", "Toyota Hiace", 2022, 15000},
		{"Ambulances", "HY-296", "Toyota Hiace", 2021, 42000},
	})

	result, err := ProcessVehicleUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessVehicleUpload: %v", err)
	}
	if result.Outcome.Created != 2 || result.Outcome.Skipped != 0 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if repo.created[0].Callsign != "HY-295" {
		t.Fatalf("callsign not upper-cased: %q", repo.created[0].Callsign)
	}
	if repo.created[0].Mileage != 15000 {
		t.Fatalf("mileage = %v, want 15000", repo.created[0].Mileage)
	}
	if repo.created[0].AddedVia != string(models.BulkAddedViaType) {
		t.Fatalf("AddedVia = %q, want bulk", repo.created[0].AddedVia)
	}
}

func TestProcessVehicleUploadSkipsIncompleteRows(t *testing.T) {
	repo := newStubVehicleRepo()
	buf := vehicleSheet(t, [][]interface{}{
		{"Ambulances", "HY-295", "Toyota Hiace", 2022},
		{"", "HY-296", "Toyota Hiace", 2021}, // missing name
		{"Ambulances", "HY-297", "Toyota Hiace", "twenty"}, // bad year
	})

	result, err := ProcessVehicleUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessVehicleUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 2 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if len(repo.loggedErrors) != 2 {
		t.Fatalf("logged %d errors, want 2", len(repo.loggedErrors))
	}
	if repo.loggedErrors[0].ErrorType != models.MissingDataErrorType {
		t.Fatalf("first error type = %q, want missing data", repo.loggedErrors[0].ErrorType)
	}
	if !strings.Contains(result.Outcome.Errors()[0], "row 3") {
		t.Fatalf("skip reason should carry the row number: %v", result.Outcome.Errors())
	}
}

func TestProcessVehicleUploadInFileDuplicate(t *testing.T) {
	repo := newStubVehicleRepo()
	buf := vehicleSheet(t, [][]interface{}{
		{"Ambulances", "HY-295", "Toyota Hiace", 2022},
		{"Ambulances", "hy-295", "Suzuki Bolan", 2020}, // same callsign, different case
	})

	result, err := ProcessVehicleUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessVehicleUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 1 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	// First occurrence wins.
	if repo.created[0].Model != "Toyota Hiace" {
		t.Fatalf("wrong row kept: %+v", repo.created[0])
	}
	if repo.loggedErrors[0].ErrorType != models.DuplicateErrorType {
		t.Fatalf("error type = %q, want duplicate", repo.loggedErrors[0].ErrorType)
	}
}

func TestProcessVehicleUploadScreensExistingCallsigns(t *testing.T) {
	repo := newStubVehicleRepo()
	repo.existing = []string{"HY-295"}
	buf := vehicleSheet(t, [][]interface{}{
		{"Ambulances", "HY-295", "Toyota Hiace", 2022},
		{"Ambulances", "HY-296", "Toyota Hiace", 2021},
	})

	result, err := ProcessVehicleUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessVehicleUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 1 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if repo.created[0].Callsign != "HY-296" {
		t.Fatalf("expected only the new callsign to commit, got %+v", repo.created)
	}
}

func TestProcessVehicleUploadNoValidRows(t *testing.T) {
	repo := newStubVehicleRepo()
	buf := vehicleSheet(t, [][]interface{}{
		{"", "", "", ""},
	})

	_, err := ProcessVehicleUpload(buf, repo, "ops@fleet.test")
	if !errors.Is(err, ingest.ErrNoValidRows) {
		t.Fatalf("got %v, want ErrNoValidRows", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("nothing should be committed when every row is invalid")
	}
}

func TestProcessVehicleUploadFoldsConcurrentLosses(t *testing.T) {
	repo := newStubVehicleRepo()
	repo.insertedCount = 1 // one row lost to the unique-index backstop
	buf := vehicleSheet(t, [][]interface{}{
		{"Ambulances", "HY-295", "Toyota Hiace", 2022},
		{"Ambulances", "HY-296", "Toyota Hiace", 2021},
	})

	result, err := ProcessVehicleUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessVehicleUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 1 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}
	if result.Outcome.Total() != 2 {
		t.Fatalf("Total = %d, want 2", result.Outcome.Total())
	}
}

func TestVehicleTemplateRoundTrip(t *testing.T) {
	// The downloadable template's headers must decode through the same
	// dictionary the upload pipeline uses.
	header := make(ingest.Row, len(VehicleTemplateHeaders))
	copy(header, VehicleTemplateHeaders)

	columns := ingest.MapHeader(header, vehicleColumns)
	if len(columns) != len(VehicleTemplateHeaders) {
		t.Fatalf("only %d of %d template headers decode", len(columns), len(VehicleTemplateHeaders))
	}
	for i, want := range VehicleTemplateHeaders {
		if columns[i] != want {
			t.Fatalf("template header %q decoded to %q", want, columns[i])
		}
	}
	if len(VehicleTemplateSample) != len(VehicleTemplateHeaders) {
		t.Fatal("sample row length must match the header row")
	}
}
