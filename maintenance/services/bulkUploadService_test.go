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

type milestoneCall struct {
	vehicleID uuid.UUID
	tireJob   bool
}

type stubMaintenanceRepo struct {
	refs         []ingest.VehicleRef
	created      []models.Maintenance
	loggedErrors []models.BulkUploadError
	milestones   []milestoneCall
}

func newStubMaintenanceRepo(refs ...ingest.VehicleRef) *stubMaintenanceRepo {
	return &stubMaintenanceRepo{refs: refs}
}

func (s *stubMaintenanceRepo) ListVehicleRefs() ([]ingest.VehicleRef, error) {
	return s.refs, nil
}

func (s *stubMaintenanceRepo) BulkCreateMaintenance(jobs []models.Maintenance) (int64, error) {
	s.created = jobs
	return int64(len(jobs)), nil
}

func (s *stubMaintenanceRepo) ApplyServiceMilestone(vehicleID uuid.UUID, tireJob bool) error {
	s.milestones = append(s.milestones, milestoneCall{vehicleID: vehicleID, tireJob: tireJob})
	return nil
}

func (s *stubMaintenanceRepo) LogBulkUploadErrors(rows []models.BulkUploadError) error {
	s.loggedErrors = append(s.loggedErrors, rows...)
	return nil
}

// maintenanceSheet builds a headerless register sheet: title rows on top,
// positional data rows below.
func maintenanceSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	all := append([][]interface{}{
		{"Workshop Register"},
		{"June 2025"},
	}, rows...)
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

func TestProcessMaintenanceUploadPositionalDecode(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	repo := newStubMaintenanceRepo(hy295)

	buf := maintenanceSheet(t, [][]interface{}{
		{"1-Jun-25", "hy-295", "Corrective", "Brake Job", "Scheduled", "Imran", "Front pads", "0", "1500", "0", "800", "pads x2"},
	})

	result, err := ProcessMaintenanceUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessMaintenanceUpload: %v", err)
	}
	if result.Outcome.Created != 1 || result.Outcome.Skipped != 0 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}

	job := repo.created[0]
	if job.VehicleID != hy295.ID {
		t.Fatal("callsign did not resolve to the registered vehicle")
	}
	if job.Category != models.CorrectiveCategory || job.Type != "Brake Job" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.FabricationCost.IntPart() != 1500 || job.OtherCost.IntPart() != 800 {
		t.Fatalf("costs not decoded: %+v", job)
	}
	if len(repo.milestones) != 0 {
		t.Fatal("a Scheduled job must not stamp a milestone")
	}
}

func TestProcessMaintenanceUploadStampsMilestones(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	hy296 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-296"}
	repo := newStubMaintenanceRepo(hy295, hy296)

	buf := maintenanceSheet(t, [][]interface{}{
		{"1-Jun-25", "HY-295", "Corrective", "Tyre Replacement", "Completed", "", "", "", "", "", "", ""},
		{"2-Jun-25", "HY-296", "Preventive", "Oil Change", "Completed", "", "", "", "", "", "", ""},
	})

	result, err := ProcessMaintenanceUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessMaintenanceUpload: %v", err)
	}
	if result.Outcome.Created != 2 {
		t.Fatalf("unexpected outcome: %+v", result.Outcome)
	}

	got := map[uuid.UUID]bool{}
	for _, m := range repo.milestones {
		got[m.vehicleID] = m.tireJob
	}
	if tire, ok := got[hy295.ID]; !ok || !tire {
		t.Fatal("tyre job should stamp the tire-change milestone")
	}
	if tire, ok := got[hy296.ID]; !ok || tire {
		t.Fatal("oil change should stamp the plain service milestone")
	}
}

func TestProcessMaintenanceUploadSkipsBadRows(t *testing.T) {
	hy295 := ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"}
	repo := newStubMaintenanceRepo(hy295)

	buf := maintenanceSheet(t, [][]interface{}{
		{"1-Jun-25", "HY-295", "", "Brake Job"},          // missing category
		{"1-Jun-25", "HY-999", "Corrective", "Brake Job"}, // unknown callsign
		{"2-Jun-25", "HY-295", "Corrective", "Brake Job"},
	})

	result, err := ProcessMaintenanceUpload(buf, repo, "ops@fleet.test")
	if err != nil {
		t.Fatalf("ProcessMaintenanceUpload: %v", err)
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
}

func TestProcessMaintenanceUploadNoDataRows(t *testing.T) {
	repo := newStubMaintenanceRepo(ingest.VehicleRef{ID: uuid.New(), Callsign: "HY-295"})

	f := excelize.NewFile()
	defer f.Close()
	_ = f.SetCellValue("Sheet1", "A1", "Workshop Register")
	_ = f.SetCellValue("Sheet1", "A2", "Nothing below")
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	_, err := ProcessMaintenanceUpload(buf.Bytes(), repo, "ops@fleet.test")
	if !errors.Is(err, ingest.ErrNoValidRows) {
		t.Fatalf("got %v, want ErrNoValidRows", err)
	}
}

func TestIsTireJob(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Tire Replacement", true},
		{"TYRE rotation", true},
		{"Oil Change", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsTireJob(tc.in); got != tc.want {
			t.Fatalf("IsTireJob(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
