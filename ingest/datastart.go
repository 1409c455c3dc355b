package ingest

import "strings"

// FindDataStart locates the first row of real data in a positionally decoded
// sheet. Field sheets carry a variable number of free-text title rows above
// the actual table, so the scan accepts the first row whose leading cell
// either parses as a date, contains a date-like separator, or starts with a
// recognized domain prefix token (e.g. a callsign prefix).
//
// This is a heuristic, not a guarantee: a title row that happens to open with
// a dash-containing string will be misclassified. Known limitation.
func FindDataStart(rows []Row, prefixes ...string) int {
	for i, row := range rows {
		first := strings.TrimSpace(row.Cell(0))
		if first == "" {
			continue
		}
		if _, err := ParseDate(first); err == nil {
			return i
		}
		if strings.ContainsAny(first, "-/") {
			return i
		}
		upper := strings.ToUpper(first)
		for _, p := range prefixes {
			if strings.HasPrefix(upper, strings.ToUpper(p)) {
				return i
			}
		}
	}
	return -1
}
