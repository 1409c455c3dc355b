package ingest

import "strings"

// MapHeader resolves a header row against a column dictionary, returning a
// mapping of column index to canonical field name. Matching is trimmed and
// case-insensitive, so "Call Sign" and "call sign " land on the same field.
// Unrecognized headers are skipped, not an error.
func MapHeader(header Row, dict map[string]string) map[int]string {
	columns := make(map[int]string)
	for i, cell := range header {
		key := strings.ToLower(strings.TrimSpace(cell))
		if key == "" {
			continue
		}
		if field, ok := dict[key]; ok {
			columns[i] = field
		}
	}
	return columns
}

// Dictionary builds a lookup from header spellings to a canonical field name.
// Every spelling is normalized the same way MapHeader normalizes headers.
func Dictionary(fields map[string][]string) map[string]string {
	dict := make(map[string]string)
	for canonical, spellings := range fields {
		dict[strings.ToLower(canonical)] = canonical
		for _, s := range spellings {
			dict[strings.ToLower(strings.TrimSpace(s))] = canonical
		}
	}
	return dict
}
