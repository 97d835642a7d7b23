package utils

import (
	"time"

	"github.com/julianstephens/routinely/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// DateOf formats a time as a date string (YYYY-MM-DD).
func DateOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// MinuteOf formats a time as a wall-clock minute string (HH:MM).
func MinuteOf(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ValidateTimeFormat checks if the string matches the standard time
// format, including zero padding. Stored times are compared as strings,
// so "6:30" must be rejected even though time.Parse accepts it.
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != len(constants.TimeFormat) {
		return false
	}
	_, err := ParseTime(timeStr)
	return err == nil
}

// WindowDates enumerates the N calendar dates ending at ref, newest first:
// ref, ref-1, ... ref-N+1.
func WindowDates(ref time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, DateOf(ref.AddDate(0, 0, -i)))
	}
	return dates
}

// MondayOf returns the Monday of the week containing t, at midnight in t's
// location. Sunday counts as the end of the previous week.
func MondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	d := t.AddDate(0, 0, 1-weekday)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}
