package utils

import (
	"os"
	"time"
)

// DateLocation is the application's timezone.
var DateLocation *time.Location

// InitializeDateLocation sets up the application's timezone.
func InitializeDateLocation() error {
	timezone := os.Getenv("DB_TIMEZONE")
	if timezone == "" {
		timezone = "Asia/Karachi" // fleet operates in Sindh
	}

	var err error
	DateLocation, err = time.LoadLocation(timezone)
	return err
}

// NormalizeDate converts a time.Time to a normalized date at midnight in the
// application timezone.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.In(DateLocation).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, DateLocation)
}

// Today returns today's date normalized at midnight in the application timezone.
func Today() time.Time {
	return NormalizeDate(time.Now())
}

// MonthWindow returns the [start, end) range covering the month that contains t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, DateLocation)
	return start, start.AddDate(0, 1, 0)
}
