package ingest

import "testing"

func TestFindDataStartSkipsTitleRows(t *testing.T) {
	rows := []Row{
		{"Workshop Register"},
		{"June 2025"},
		{},
		{"1-Jun-25", "HY-295", "Corrective", "Brake Job"},
		{"2-Jun-25", "HY-296", "Preventive", "Oil Change"},
	}
	if got := FindDataStart(rows); got != 3 {
		t.Fatalf("FindDataStart = %d, want 3", got)
	}
}

func TestFindDataStartPrefixToken(t *testing.T) {
	rows := []Row{
		{"Summary"},
		{"HY295", "no separator but known prefix"},
	}
	if got := FindDataStart(rows, "HY"); got != 1 {
		t.Fatalf("FindDataStart with prefix = %d, want 1", got)
	}
}

func TestFindDataStartSeparatorHeuristic(t *testing.T) {
	// A title row containing a separator is misclassified as data. This is
	// the documented limitation of the scan.
	rows := []Row{
		{"Jan-June Summary"},
		{"1-Jun-25", "HY-295"},
	}
	if got := FindDataStart(rows); got != 0 {
		t.Fatalf("FindDataStart = %d, want 0 (separator heuristic fires on the title)", got)
	}
}

func TestFindDataStartNoData(t *testing.T) {
	rows := []Row{
		{"Title"},
		{"Nothing here"},
		{},
	}
	if got := FindDataStart(rows); got != -1 {
		t.Fatalf("FindDataStart = %d, want -1", got)
	}
}
