package models

import (
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
)

// RecordMode selects how a daily log stores repeated records for the same
// (event, date) pair. Single-valued domains replace; additive domains
// append. The mode is fixed per domain at configuration time.
type RecordMode int

const (
	RecordReplace RecordMode = iota
	RecordAppend
)

// LogEntry is one status record attached to an event and a calendar date.
type LogEntry struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
	Note       string    `json:"note,omitempty"`
}

// DailyLog maps calendar dates (YYYY-MM-DD) to the entries recorded on
// that date. Missing dates are simply absent, never zero-filled.
type DailyLog map[string][]LogEntry

// Record stores an entry under the given date. In replace mode any prior
// entry for the same event id on that date is dropped first.
func (l DailyLog) Record(date string, entry LogEntry, mode RecordMode) {
	if mode == RecordReplace {
		kept := l[date][:0]
		for _, e := range l[date] {
			if e.EventID != entry.EventID {
				kept = append(kept, e)
			}
		}
		l[date] = kept
	}
	l[date] = append(l[date], entry)
}

// StatusFor returns the recorded status for an event on a date, or
// "none" when nothing was recorded.
func (l DailyLog) StatusFor(eventID, date string) string {
	for _, e := range l[date] {
		if e.EventID == eventID {
			return e.Status
		}
	}
	return constants.StatusNone
}

// Entries returns the entries for a date in recording order.
func (l DailyLog) Entries(date string) []LogEntry {
	return l[date]
}

// DatedEntries pairs a calendar date with the entries recorded on it.
type DatedEntries struct {
	Date    string     `json:"date"`
	Entries []LogEntry `json:"entries"`
}

// EntriesForRange walks the dates from start through end ascending and
// returns those that have entries. Absent dates are omitted, never
// zero-filled. An inverted range yields an empty sequence.
func (l DailyLog) EntriesForRange(start, end string) ([]DatedEntries, error) {
	from, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return nil, errors.InvalidInputf("invalid date %q (expected YYYY-MM-DD)", start)
	}
	to, err := time.Parse(constants.DateFormat, end)
	if err != nil {
		return nil, errors.InvalidInputf("invalid date %q (expected YYYY-MM-DD)", end)
	}

	out := []DatedEntries{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(constants.DateFormat)
		if entries := l[date]; len(entries) > 0 {
			out = append(out, DatedEntries{Date: date, Entries: entries})
		}
	}
	return out, nil
}
