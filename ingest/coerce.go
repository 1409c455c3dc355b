package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var ErrInvalidDate = errors.New("invalid date")

// Layouts tried for direct string parsing, most common first. Month-name
// layouts cover the "1-Jun-25" style that hand-entered sheets use.
var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"1/2/2006",
	"01-02-06",
	"2-Jan-06",
	"2-Jan-2006",
	"02-Jan-06",
	"2 Jan 2006",
	"2-January-2006",
	"Jan 2, 2006",
}

// CleanString trims a cell; an empty result means "absent" for optional fields.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}

// ParseNumber coerces a cell to a float. Empty or non-numeric input becomes
// zero rather than failing the row; use ParseStrictNumber for required fields.
func ParseNumber(s string) float64 {
	v, err := ParseStrictNumber(s)
	if err != nil {
		return 0
	}
	return v
}

// ParseStrictNumber parses a numeric cell, tolerating thousands separators.
func ParseStrictNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, errors.New("empty numeric cell")
	}
	return strconv.ParseFloat(s, 64)
}

// ParseDate resolves a cell to a calendar date. The cascade, first hit wins:
//  1. one of the known layouts as-is
//  2. a DD-MonName-YY style value with mixed separators normalized to dashes
//  3. the value with a trailing time component stripped
//  4. a numeric Excel date serial
func ParseDate(v string) (time.Time, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, ok := parseLayouts(s); ok {
		return t, nil
	}

	// Normalize "1 Jun 25" / "1/Jun/25" style separators.
	normalized := strings.NewReplacer("/", "-", " ", "-").Replace(s)
	if t, ok := parseLayouts(normalized); ok {
		return t, nil
	}

	// Strip a trailing time component ("2023-10-26 14:30" or ISO "T" form).
	if i := strings.IndexAny(s, " T"); i > 0 {
		if t, ok := parseLayouts(s[:i]); ok {
			return t, nil
		}
	}

	// Excel stores dates as day serials; formatting quirks can surface them raw.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
}

func parseLayouts(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseClock formats a time-of-day cell as zero-padded HH:MM. Fractional-day
// serials (Excel time cells) and loose "9:5" strings are normalized; anything
// else passes through unchanged as a best-effort value.
func ParseClock(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 && f < 1 {
		mins := int(math.Round(f * 24 * 60))
		return fmt.Sprintf("%02d:%02d", (mins/60)%24, mins%60)
	}

	if strings.Contains(s, ":") {
		parts := strings.SplitN(s, ":", 3)
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			return fmt.Sprintf("%02d:%02d", h, m)
		}
	}

	return s
}
