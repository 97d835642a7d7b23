// Package service implements the four tracking domains (reminders,
// sleep, supplements, workouts) as thin orchestrations of the generic
// document store and the routine engine. Every operation is a blocking
// read-modify-write against one domain document.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/routine"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/utils"
)

// Reminders manages the time-anchored reminder registry and its
// per-day completion log. Completion is single-valued per (id, date).
type Reminders struct {
	store *storage.Store[models.RemindersDoc]
	now   func() time.Time
}

func NewReminders(store *storage.Store[models.RemindersDoc], now func() time.Time) *Reminders {
	if now == nil {
		now = time.Now
	}
	return &Reminders{store: store, now: now}
}

// TodayReminder is one registry entry joined with its status for today.
type TodayReminder struct {
	ID        string `json:"id" jsonschema:"reminder identifier"`
	Time      string `json:"time" jsonschema:"scheduled time of day (HH:MM)"`
	Message   string `json:"message" jsonschema:"reminder message"`
	Completed bool   `json:"completed" jsonschema:"whether completed today"`
	Skipped   bool   `json:"skipped" jsonschema:"whether skipped today"`
}

// TodayResult lists the enabled reminders for the current date.
type TodayResult struct {
	Date      string          `json:"date" jsonschema:"current date (YYYY-MM-DD)"`
	Timezone  string          `json:"timezone" jsonschema:"effective timezone name"`
	Reminders []TodayReminder `json:"reminders" jsonschema:"enabled reminders sorted by time"`
}

// Today returns the enabled reminders with their completion state for
// the current date, ordered by time of day.
func (r *Reminders) Today() (*TodayResult, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	now := r.now()
	today := utils.DateOf(now)

	result := &TodayResult{
		Date:      today,
		Timezone:  now.Location().String(),
		Reminders: []TodayReminder{},
	}

	for _, ev := range models.SortedEvents(doc.Reminders, true) {
		status := doc.Log.StatusFor(ev.ID, today)
		result.Reminders = append(result.Reminders, TodayReminder{
			ID:        ev.ID,
			Time:      ev.Time,
			Message:   ev.Message,
			Completed: status == constants.StatusCompleted,
			Skipped:   status == constants.StatusSkipped,
		})
	}

	return result, nil
}

// Complete marks a reminder completed for today. A repeated call
// replaces the prior record rather than accumulating.
func (r *Reminders) Complete(id string) (string, error) {
	if err := r.record(id, constants.StatusCompleted); err != nil {
		return "", err
	}
	return fmt.Sprintf("✓ %s reminder completed! Great job staying on track!", id), nil
}

// Skip marks a reminder skipped for today.
func (r *Reminders) Skip(id string) (string, error) {
	if err := r.record(id, constants.StatusSkipped); err != nil {
		return "", err
	}
	return fmt.Sprintf("Skipped %s reminder for today", id), nil
}

func (r *Reminders) record(id, status string) error {
	return r.store.Update(func(doc *models.RemindersDoc) error {
		doc.Normalize()
		if models.FindEvent(doc.Reminders, id) == nil {
			return errors.NotFoundf("reminder %q", id)
		}
		doc.Log.Record(utils.DateOf(r.now()), models.LogEntry{
			ID:         uuid.NewString(),
			EventID:    id,
			Status:     status,
			RecordedAt: r.now(),
		}, models.RecordReplace)
		return nil
	})
}

// Add inserts a reminder or overwrites an existing one with the same id.
// The upsert is idempotent and always re-enables the reminder.
func (r *Reminders) Add(id, timeOfDay, message string) (string, error) {
	ev := models.Event{ID: id, Time: timeOfDay, Message: message, Enabled: true}
	if err := ev.Validate(); err != nil {
		return "", err
	}
	err := r.store.Update(func(doc *models.RemindersDoc) error {
		doc.Normalize()
		doc.Reminders = models.UpsertEvent(doc.Reminders, ev)
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Added reminder %q at %s ✓", id, timeOfDay), nil
}

// UpdateTime changes the scheduled time of an existing reminder,
// leaving its message and enabled state untouched.
func (r *Reminders) UpdateTime(id, newTime string) (string, error) {
	if !utils.ValidateTimeFormat(newTime) {
		return "", errors.InvalidInputf("invalid time format %q (expected HH:MM)", newTime)
	}
	err := r.store.Update(func(doc *models.RemindersDoc) error {
		ev := models.FindEvent(doc.Reminders, id)
		if ev == nil {
			return errors.NotFoundf("reminder %q", id)
		}
		ev.Time = newTime
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated %s reminder to %s ✓", id, newTime), nil
}

// SetEnabled toggles a reminder without deleting its history. Disabled
// reminders never trigger and are excluded from compliance counting.
func (r *Reminders) SetEnabled(id string, enabled bool) (string, error) {
	err := r.store.Update(func(doc *models.RemindersDoc) error {
		ev := models.FindEvent(doc.Reminders, id)
		if ev == nil {
			return errors.NotFoundf("reminder %q", id)
		}
		ev.Enabled = enabled
		return nil
	})
	if err != nil {
		return "", err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return fmt.Sprintf("Reminder %q %s", id, state), nil
}

// ReminderStats is the per-reminder slice of a compliance report.
type ReminderStats struct {
	Completed          int    `json:"completed" jsonschema:"days completed in the window"`
	Skipped            int    `json:"skipped" jsonschema:"days skipped in the window"`
	TotalOpportunities int    `json:"total_opportunities" jsonschema:"days in the window"`
	ComplianceRate     string `json:"compliance_rate" jsonschema:"completed/opportunities as a percentage"`
}

// ComplianceResult is a window-level reminder compliance report.
type ComplianceResult struct {
	Period       string                   `json:"period" jsonschema:"human-readable window description"`
	Stats        map[string]ReminderStats `json:"stats" jsonschema:"per-reminder statistics"`
	OverallRate  string                   `json:"overall_rate" jsonschema:"combined completion rate"`
	DaysOnTarget int                      `json:"days_on_target" jsonschema:"days with every enabled reminder completed"`
	Insights     []string                 `json:"insights" jsonschema:"threshold-based observations"`
}

// Compliance aggregates the daily log over the trailing window. Only
// enabled reminders count toward denominators.
func (r *Reminders) Compliance(days int) (*ComplianceResult, error) {
	if days <= 0 {
		days = constants.DefaultWindowDays
	}
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	enabled := []models.Event{}
	for _, ev := range doc.Reminders {
		if ev.Enabled {
			enabled = append(enabled, ev)
		}
	}

	result := &ComplianceResult{
		Period: fmt.Sprintf("Last %d days", days),
		Stats:  map[string]ReminderStats{},
	}

	dates := utils.WindowDates(r.now(), days)
	totalCompleted := 0
	for _, ev := range enabled {
		completed, skipped := 0, 0
		for _, date := range dates {
			switch doc.Log.StatusFor(ev.ID, date) {
			case constants.StatusCompleted:
				completed++
			case constants.StatusSkipped:
				skipped++
			}
		}
		totalCompleted += completed
		result.Stats[ev.ID] = ReminderStats{
			Completed:          completed,
			Skipped:            skipped,
			TotalOpportunities: days,
			ComplianceRate:     routine.FormatRate(routine.Rate(completed, days, 0), 0),
		}
	}

	for _, date := range dates {
		if len(enabled) == 0 {
			break
		}
		done := 0
		for _, ev := range enabled {
			if doc.Log.StatusFor(ev.ID, date) == constants.StatusCompleted {
				done++
			}
		}
		if done == len(enabled) {
			result.DaysOnTarget++
		}
	}

	overall := routine.Rate(totalCompleted, len(enabled)*days, 0)
	result.OverallRate = routine.FormatRate(overall, 0)
	result.Insights = routine.CollectInsights([]routine.Insight{
		{When: overall >= constants.GoodComplianceThreshold, Message: "✅ Excellent reminder consistency! Keep it up."},
		{When: len(enabled) > 0 && overall < 50, Message: "⚠️ Reminder compliance is slipping. Consider adjusting times to fit your day."},
	})

	return result, nil
}

// HistoryResult lists the recorded reminder entries over a date range.
type HistoryResult struct {
	Start string                `json:"start" jsonschema:"first date of the range (YYYY-MM-DD)"`
	End   string                `json:"end" jsonschema:"last date of the range (YYYY-MM-DD)"`
	Days  []models.DatedEntries `json:"days" jsonschema:"dates with recorded entries, ascending"`
}

// History returns the raw daily-log entries between two dates inclusive,
// ascending, omitting dates with nothing recorded.
func (r *Reminders) History(start, end string) (*HistoryResult, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	days, err := doc.Log.EntriesForRange(start, end)
	if err != nil {
		return nil, err
	}
	return &HistoryResult{Start: start, End: end, Days: days}, nil
}

// Events returns the full registry in registration order.
func (r *Reminders) Events() ([]models.Event, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Reminders, nil
}
