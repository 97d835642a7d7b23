// Package routine holds the time-keyed event and compliance engine
// shared by every tracking domain: heartbeat trigger evaluation over an
// event registry, sliding-window enumeration, and rate/insight math.
package routine

import (
	"time"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/utils"
)

// TriggerKind distinguishes an exact event match from a coarse
// hour-band check-in.
type TriggerKind string

const (
	TriggerEvent   TriggerKind = "reminder_trigger"
	TriggerCheckin TriggerKind = "proactive_checkin"
)

// Trigger is the at-most-one notification produced by a heartbeat tick.
type Trigger struct {
	Kind    TriggerKind `json:"type"`
	EventID string      `json:"event_id,omitempty"`
	Message string      `json:"message"`
	Time    string      `json:"time,omitempty"`
}

// checkinBand is a fallback rule: when no event matches the current
// minute, the first band whose hour matches emits a generic check-in.
type checkinBand struct {
	hour    int
	message string
}

var fallbackCheckins = []checkinBand{
	{6, "🌅 Good morning! Ready to start your day? Your supplements are waiting!"},
	{17, "💪 Pre-workout energy check! Your training session is coming up. How are you feeling?"},
	{21, "🌙 Wind-down time. Did you get your evening supplements? Let's prepare for great sleep."},
	{22, "😴 Sleep time approaching. Aim for 8 hours for optimal recovery. Sweet dreams!"},
}

// Evaluate decides whether anything should fire at the given instant.
// Events are scanned in registration order and the first enabled event
// whose time equals the current minute wins; only when no event matches
// does the hour-band fallback get a chance. The match is exact string
// equality at minute granularity, so a heartbeat cadence slower than
// once per minute can miss a trigger. That is the accepted precision
// bound; widening the window would need an explicit config option.
func Evaluate(events []models.Event, now time.Time) *Trigger {
	minute := utils.MinuteOf(now)

	for _, ev := range events {
		if ev.Enabled && ev.Time == minute {
			return &Trigger{
				Kind:    TriggerEvent,
				EventID: ev.ID,
				Message: ev.Message,
				Time:    minute,
			}
		}
	}

	hour := now.Hour()
	for _, band := range fallbackCheckins {
		if band.hour == hour {
			return &Trigger{
				Kind:    TriggerCheckin,
				Message: band.message,
			}
		}
	}

	return nil
}
