package models

import (
	"sort"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
)

// Event is a named, time-of-day-anchored recurring entry in a registry.
// Events are stored as a slice so that registration order survives the
// JSON round-trip; the heartbeat engine depends on that order.
type Event struct {
	ID      string `json:"id"`
	Time    string `json:"time"` // HH:MM format
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

func (e *Event) Validate() error {
	if e.ID == "" {
		return errors.InvalidInputf("event id cannot be empty")
	}
	// The zero-padded length matters: minute matching and list ordering
	// both compare the stored string directly.
	if len(e.Time) != len(constants.TimeFormat) {
		return errors.InvalidInputf("invalid time format %q (expected HH:MM)", e.Time)
	}
	if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
		return errors.InvalidInputf("invalid time format %q (expected HH:MM)", e.Time)
	}
	return nil
}

// UpsertEvent inserts the event or overwrites an existing entry with the
// same id in place, preserving its registration position.
func UpsertEvent(events []Event, ev Event) []Event {
	for i := range events {
		if events[i].ID == ev.ID {
			events[i] = ev
			return events
		}
	}
	return append(events, ev)
}

// FindEvent returns a pointer to the event with the given id, or nil.
func FindEvent(events []Event, id string) *Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}

// SortedEvents returns the events ordered by time of day ascending.
// Lexicographic comparison is sufficient because HH:MM is zero-padded
// 24-hour. When enabledOnly is set, disabled events are omitted.
func SortedEvents(events []Event, enabledOnly bool) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if enabledOnly && !ev.Enabled {
			continue
		}
		out = append(out, ev)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
