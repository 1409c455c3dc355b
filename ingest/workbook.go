package ingest

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Batch-fatal decode errors. Row-level problems never surface here; they are
// folded into the Outcome as skip reasons.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type, expected an Excel workbook")
	ErrEmptyWorkbook       = errors.New("workbook contains no sheets")
	ErrNoValidRows         = errors.New("no valid rows found in the uploaded file")
)

// Row is one spreadsheet row as loosely typed cell text, exactly as excelize
// formats it. Cells may be empty; trailing empty cells may be absent entirely.
type Row []string

// Record maps canonical field names to raw cell text for one row.
type Record map[string]string

// Workbook holds the decoded first sheet of an uploaded spreadsheet.
type Workbook struct {
	rows []Row
}

// OpenWorkbook decodes an uploaded buffer into the rows of its first sheet.
// Only the first sheet is read; callers choose positional or header-mapped
// access afterwards. The decode is a pure transformation of bytes to rows.
func OpenWorkbook(buf []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		// Legacy .xls and non-spreadsheet payloads land here.
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFileType, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", sheets[0], err)
	}

	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, Row(r))
	}
	return &Workbook{rows: rows}, nil
}

// Rows returns every row of the first sheet for positional decoding.
func (w *Workbook) Rows() []Row {
	return w.rows
}

// MappedRows treats the first row as a header and maps every following row
// onto canonical field names using the given column dictionary. Headers the
// dictionary does not know are ignored.
func (w *Workbook) MappedRows(dict map[string]string) []Record {
	if len(w.rows) == 0 {
		return nil
	}
	columns := MapHeader(w.rows[0], dict)
	records := make([]Record, 0, len(w.rows)-1)
	for _, row := range w.rows[1:] {
		rec := Record{}
		for col, field := range columns {
			if col < len(row) {
				rec[field] = row[col]
			}
		}
		records = append(records, rec)
	}
	return records
}

// Cell returns the cell at position i, or "" when the row is short.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}
