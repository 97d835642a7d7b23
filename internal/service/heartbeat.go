package service

import (
	"time"

	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/routine"
)

// Heartbeat is the engine's single proactive entry point. An external
// scheduler calls Tick at its own cadence (once per minute recommended);
// the engine never schedules itself.
type Heartbeat struct {
	reminders *Reminders
	workouts  *Workouts
	now       func() time.Time
}

func NewHeartbeat(reminders *Reminders, workouts *Workouts, now func() time.Time) *Heartbeat {
	if now == nil {
		now = time.Now
	}
	return &Heartbeat{reminders: reminders, workouts: workouts, now: now}
}

// Tick evaluates one heartbeat. The reminder registry is scanned first
// in registration order, then today's scheduled workout, then the
// hour-band fallback; at most one trigger is returned.
func (h *Heartbeat) Tick() (*routine.Trigger, error) {
	doc, err := h.reminders.store.Load()
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if doc.Enabled {
		events = doc.Reminders
	}

	if workoutEvent, err := h.workouts.TodayEvent(); err != nil {
		return nil, err
	} else if workoutEvent != nil {
		events = append(events, *workoutEvent)
	}

	return routine.Evaluate(events, h.now()), nil
}
