package ingest

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"01-06-2025", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"01/06/2025", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"1-Jun-25", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"1 Jun 25", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2-January-2026", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"Jan 2, 2026", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{" 2025-06-01 ", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q) returned error: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDateStripsTrailingTime(t *testing.T) {
	got, err := ParseDate("2023-10-26 14:30")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	got, err = ParseDate("2023-10-26T14:30:00")
	if err != nil {
		t.Fatalf("ParseDate returned error for ISO form: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("ISO form: got %v, want %v", got, want)
	}
}

func TestParseDateExcelSerial(t *testing.T) {
	// Serial 45444 is 2024-06-01 in the 1900 date system.
	got, err := ParseDate("45444")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 1 {
		t.Fatalf("serial decoded to %v, want 2024-06-01", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "??", "Total"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) = %v, want ErrInvalidDate", in, err)
		}
	}
}

func TestParseNumberLenient(t *testing.T) {
	if got := ParseNumber("1,234.5"); got != 1234.5 {
		t.Fatalf("ParseNumber with separator = %v, want 1234.5", got)
	}
	if got := ParseNumber(""); got != 0 {
		t.Fatalf("ParseNumber empty = %v, want 0", got)
	}
	if got := ParseNumber("n/a"); got != 0 {
		t.Fatalf("ParseNumber garbage = %v, want 0", got)
	}
}

func TestParseStrictNumber(t *testing.T) {
	if _, err := ParseStrictNumber(""); err == nil {
		t.Fatal("expected error for empty cell")
	}
	if _, err := ParseStrictNumber("abc"); err == nil {
		t.Fatal("expected error for non-numeric cell")
	}
	got, err := ParseStrictNumber("2,022")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2022 {
		t.Fatalf("got %v, want 2022", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct{ in, want string }{
		{"0.5", "12:00"},              // Excel fractional day
		{"0.604166666666667", "14:30"},
		{"9:5", "09:05"},
		{"14:30", "14:30"},
		{"", ""},
		{"noonish", "noonish"}, // passes through
	}
	for _, tc := range cases {
		if got := ParseClock(tc.in); got != tc.want {
			t.Fatalf("ParseClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
