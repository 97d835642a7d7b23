package service

import (
	"fmt"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/routine"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/utils"
)

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// Workouts manages the weekly training schedule and per-day session
// check-ins. Sessions are additive; the schedule has one slot per
// weekday.
type Workouts struct {
	store *storage.Store[models.WorkoutsDoc]
	now   func() time.Time
}

func NewWorkouts(store *storage.Store[models.WorkoutsDoc], now func() time.Time) *Workouts {
	if now == nil {
		now = time.Now
	}
	return &Workouts{store: store, now: now}
}

// Schedule sets the planned session for one weekday, overwriting any
// existing slot.
func (w *Workouts) Schedule(day, timeOfDay, workoutType, description string) (string, error) {
	if !weekdays[day] {
		return "", errors.InvalidInputf("invalid day %q (use Monday through Sunday)", day)
	}
	if !utils.ValidateTimeFormat(timeOfDay) {
		return "", errors.InvalidInputf("invalid time format %q (expected HH:MM)", timeOfDay)
	}
	if workoutType == "" {
		return "", errors.InvalidInputf("workout type cannot be empty")
	}

	err := w.store.Update(func(doc *models.WorkoutsDoc) error {
		doc.Normalize()
		doc.Schedule[day] = models.ScheduledWorkout{
			Time:        timeOfDay,
			Type:        workoutType,
			Description: description,
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Scheduled %s on %s at %s: %s ✓", workoutType, day, timeOfDay, description), nil
}

// CheckIn opens a session for today at the given location.
func (w *Workouts) CheckIn(location string) (string, error) {
	if location == "" {
		location = "Gym"
	}

	today := utils.DateOf(w.now())
	err := w.store.Update(func(doc *models.WorkoutsDoc) error {
		doc.Normalize()
		doc.Log[today] = append(doc.Log[today], models.WorkoutSession{
			Location:    location,
			CheckedInAt: w.now(),
			Status:      constants.SessionInProgress,
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Checked in at %s 💪 Keep crushing it!", location), nil
}

// Complete closes today's most recent session.
func (w *Workouts) Complete() (string, error) {
	today := utils.DateOf(w.now())
	err := w.store.Update(func(doc *models.WorkoutsDoc) error {
		doc.Normalize()
		sessions := doc.Log[today]
		if len(sessions) == 0 {
			return errors.NotFoundf("no active workout session for today")
		}
		latest := &sessions[len(sessions)-1]
		latest.Status = constants.SessionCompleted
		completedAt := w.now()
		latest.CompletedAt = &completedAt
		return nil
	})
	if err != nil {
		return "", err
	}
	return "Great workout! Session completed 🎉 Rest well!", nil
}

// WeeklyResult is the full weekly schedule.
type WeeklyResult struct {
	WeekStarting  string                             `json:"week_starting" jsonschema:"Monday of the current week (YYYY-MM-DD)"`
	Workouts      map[string]models.ScheduledWorkout `json:"workouts" jsonschema:"planned sessions keyed by weekday"`
	TotalSessions int                                `json:"total_sessions" jsonschema:"number of scheduled sessions"`
}

// Weekly returns the planned schedule for the current week.
func (w *Workouts) Weekly() (*WeeklyResult, error) {
	doc, err := w.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	return &WeeklyResult{
		WeekStarting:  utils.DateOf(utils.MondayOf(w.now())),
		Workouts:      doc.Schedule,
		TotalSessions: len(doc.Schedule),
	}, nil
}

// TodayWorkoutResult joins today's plan with its logged sessions.
type TodayWorkoutResult struct {
	Date              string                   `json:"date" jsonschema:"current date (YYYY-MM-DD)"`
	Day               string                   `json:"day" jsonschema:"weekday name"`
	PlannedWorkout    *models.ScheduledWorkout `json:"planned_workout,omitempty" jsonschema:"scheduled session, absent when none planned"`
	CompletedSessions []models.WorkoutSession  `json:"completed_sessions" jsonschema:"sessions logged today"`
	Status            string                   `json:"status" jsonschema:"logged when any session exists, else pending"`
}

// Today returns the plan and check-ins for the current date.
func (w *Workouts) Today() (*TodayWorkoutResult, error) {
	doc, err := w.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	now := w.now()
	today := utils.DateOf(now)
	day := now.Weekday().String()

	result := &TodayWorkoutResult{
		Date:              today,
		Day:               day,
		CompletedSessions: doc.Log[today],
		Status:            "pending",
	}
	if planned, ok := doc.Schedule[day]; ok {
		result.PlannedWorkout = &planned
	}
	if result.CompletedSessions == nil {
		result.CompletedSessions = []models.WorkoutSession{}
	}
	if len(result.CompletedSessions) > 0 {
		result.Status = "logged"
	}

	return result, nil
}

// TodayEvent exposes today's scheduled workout as a synthetic registry
// event so the heartbeat engine can fire it alongside reminders.
func (w *Workouts) TodayEvent() (*models.Event, error) {
	doc, err := w.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	day := w.now().Weekday().String()
	planned, ok := doc.Schedule[day]
	if !ok {
		return nil, nil
	}
	return &models.Event{
		ID:      fmt.Sprintf("workout:%s", day),
		Time:    planned.Time,
		Message: fmt.Sprintf("Time for %s: %s", planned.Type, planned.Description),
		Enabled: true,
	}, nil
}

// WorkoutStats is the trailing-window performance report.
type WorkoutStats struct {
	Period        string         `json:"period" jsonschema:"human-readable window description"`
	TotalSessions int            `json:"total_sessions" jsonschema:"sessions logged in the window"`
	ByType        map[string]int `json:"by_type" jsonschema:"session counts keyed by location"`
	Consistency   string         `json:"consistency" jsonschema:"sessions per window day as a percentage"`
	Insights      []string       `json:"insights" jsonschema:"threshold-based observations"`
}

// Stats counts sessions over the trailing window, grouped by location.
func (w *Workouts) Stats(days int) (*WorkoutStats, error) {
	if days <= 0 {
		days = constants.WorkoutWindowDays
	}
	doc, err := w.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	stats := &WorkoutStats{
		Period: fmt.Sprintf("Last %d days", days),
		ByType: map[string]int{},
	}

	for _, date := range utils.WindowDates(w.now(), days) {
		for _, session := range doc.Log[date] {
			stats.TotalSessions++
			stats.ByType[session.Location]++
		}
	}

	consistency := routine.Rate(stats.TotalSessions, days, 1)
	stats.Consistency = routine.FormatRate(consistency, 1)
	stats.Insights = routine.CollectInsights([]routine.Insight{
		{When: consistency >= constants.GoodComplianceThreshold, Message: "✅ Outstanding training consistency!"},
		{When: stats.TotalSessions == 0, Message: "⚠️ No sessions logged this period. Time to get back in there."},
	})

	return stats, nil
}
