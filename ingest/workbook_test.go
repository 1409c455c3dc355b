package ingest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows to an in-memory xlsx buffer.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
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

func TestOpenWorkbookRejectsNonSpreadsheet(t *testing.T) {
	_, err := OpenWorkbook([]byte("this is not a workbook"))
	if !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("got %v, want ErrUnsupportedFileType", err)
	}
}

func TestOpenWorkbookReadsFirstSheet(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"a", "b"},
		{"1", "2"},
	})

	wb, err := OpenWorkbook(buf)
	if err != nil {
		t.Fatalf("OpenWorkbook: %v", err)
	}
	rows := wb.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].Cell(0) != "1" || rows[1].Cell(1) != "2" {
		t.Fatalf("unexpected row content: %v", rows[1])
	}
	if rows[1].Cell(5) != "" {
		t.Fatal("out-of-range cell should be empty")
	}
}

func TestMappedRowsUsesDictionary(t *testing.T) {
	dict := Dictionary(map[string][]string{
		"callsign": {"call sign", "amb no"},
		"mileage":  {"odometer"},
	})

	buf := buildWorkbook(t, [][]interface{}{
		{"Call Sign ", "Odometer", "Ignored Column"},
		{"HY-295", "15000", "junk"},
		{"HY-296", "", ""},
	})

	wb, err := OpenWorkbook(buf)
	if err != nil {
		t.Fatalf("OpenWorkbook: %v", err)
	}

	records := wb.MappedRows(dict)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0]["callsign"] != "HY-295" || records[0]["mileage"] != "15000" {
		t.Fatalf("unexpected first record: %v", records[0])
	}
	if _, ok := records[0]["Ignored Column"]; ok {
		t.Fatal("unrecognized header should not produce a field")
	}
	if records[1]["callsign"] != "HY-296" {
		t.Fatalf("unexpected second record: %v", records[1])
	}
}

func TestMapHeaderIsCaseInsensitive(t *testing.T) {
	dict := Dictionary(map[string][]string{"callsign": {"call sign"}})
	columns := MapHeader(Row{"CALL SIGN", "", "Callsign"}, dict)
	if columns[0] != "callsign" {
		t.Fatalf("column 0 mapped to %q, want callsign", columns[0])
	}
	if columns[2] != "callsign" {
		t.Fatalf("column 2 mapped to %q, want callsign", columns[2])
	}
	if _, ok := columns[1]; ok {
		t.Fatal("empty header should not map")
	}
}

func TestOutcomeCapsReportedErrors(t *testing.T) {
	var o Outcome
	for i := 0; i < MaxReportedErrors+5; i++ {
		o.Skipf("row %d: bad", i)
	}
	o.Created = 3

	if o.Skipped != MaxReportedErrors+5 {
		t.Fatalf("Skipped = %d, want %d", o.Skipped, MaxReportedErrors+5)
	}
	if len(o.Errors()) != MaxReportedErrors {
		t.Fatalf("reported %d errors, want cap of %d", len(o.Errors()), MaxReportedErrors)
	}
	if o.Total() != MaxReportedErrors+8 {
		t.Fatalf("Total = %d, want %d", o.Total(), MaxReportedErrors+8)
	}
}
