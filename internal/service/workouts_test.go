package service

import (
	"errors"
	"testing"

	"github.com/julianstephens/routinely/internal/constants"
	apperrors "github.com/julianstephens/routinely/internal/errors"
)

func TestWorkouts_ScheduleOverwritesSlot(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	if _, err := w.Schedule("Monday", "19:00", "Gym", "Push day"); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	doc, err := w.store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	slot := doc.Schedule["Monday"]
	if slot.Time != "19:00" || slot.Type != "Gym" || slot.Description != "Push day" {
		t.Errorf("unexpected slot: %+v", slot)
	}
}

func TestWorkouts_ScheduleValidation(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	tests := []struct {
		name string
		day  string
		time string
		typ  string
	}{
		{"bad day", "Funday", "18:00", "Gym"},
		{"lowercase day", "monday", "18:00", "Gym"},
		{"bad time", "Monday", "6pm", "Gym"},
		{"empty type", "Monday", "18:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := w.Schedule(tt.day, tt.time, tt.typ, ""); !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestWorkouts_CheckInCompleteLifecycle(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	if _, err := w.CheckIn("CrossFit"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if _, err := w.Complete(); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	doc, err := w.store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	sessions := doc.Log["2026-08-29"]
	if len(sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions))
	}
	if sessions[0].Status != constants.SessionCompleted || sessions[0].CompletedAt == nil {
		t.Errorf("session not completed: %+v", sessions[0])
	}
	if sessions[0].Location != "CrossFit" {
		t.Errorf("location = %q", sessions[0].Location)
	}
}

func TestWorkouts_CompleteClosesMostRecentSession(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	if _, err := w.CheckIn("Gym"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if _, err := w.CheckIn("CrossFit"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if _, err := w.Complete(); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	doc, err := w.store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	sessions := doc.Log["2026-08-29"]
	if sessions[0].Status != constants.SessionInProgress {
		t.Errorf("first session should stay in progress: %+v", sessions[0])
	}
	if sessions[1].Status != constants.SessionCompleted {
		t.Errorf("latest session should be completed: %+v", sessions[1])
	}
}

func TestWorkouts_CompleteWithoutSession(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	if _, err := w.Complete(); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkouts_WeeklyStartsOnMonday(t *testing.T) {
	// 2026-08-29 is a Saturday; its week starts Monday 2026-08-24.
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	result, err := w.Weekly()
	if err != nil {
		t.Fatalf("Weekly failed: %v", err)
	}
	if result.WeekStarting != "2026-08-24" {
		t.Errorf("week_starting = %q, want 2026-08-24", result.WeekStarting)
	}
	if result.TotalSessions != 7 {
		t.Errorf("total_sessions = %d, want 7", result.TotalSessions)
	}
}

func TestWorkouts_WeeklyOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	w := newTestWorkouts(t, fixedClock(t, "2026-08-30 09:00:00"))

	result, err := w.Weekly()
	if err != nil {
		t.Fatalf("Weekly failed: %v", err)
	}
	if result.WeekStarting != "2026-08-24" {
		t.Errorf("week_starting = %q, want 2026-08-24", result.WeekStarting)
	}
}

func TestWorkouts_TodayJoinsPlanAndSessions(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	result, err := w.Today()
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if result.Day != "Saturday" {
		t.Errorf("day = %q, want Saturday", result.Day)
	}
	if result.PlannedWorkout == nil || result.PlannedWorkout.Type != "CrossFit" {
		t.Errorf("expected default Saturday plan, got %+v", result.PlannedWorkout)
	}
	if result.Status != "pending" {
		t.Errorf("status = %q, want pending", result.Status)
	}

	if _, err := w.CheckIn("CrossFit"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	result, err = w.Today()
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if result.Status != "logged" || len(result.CompletedSessions) != 1 {
		t.Errorf("expected logged status with one session, got %+v", result)
	}
}

func TestWorkouts_StatsCountsAndConsistency(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-27 09:00:00"))

	if _, err := w.CheckIn("Gym"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	w.now = fixedClock(t, "2026-08-28 09:00:00")
	if _, err := w.CheckIn("CrossFit"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	w.now = fixedClock(t, "2026-08-29 09:00:00")
	if _, err := w.CheckIn("CrossFit"); err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}

	stats, err := w.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalSessions != 3 {
		t.Errorf("total_sessions = %d, want 3", stats.TotalSessions)
	}
	if stats.ByType["CrossFit"] != 2 || stats.ByType["Gym"] != 1 {
		t.Errorf("by_type = %v", stats.ByType)
	}
	if stats.Consistency != "10.0%" {
		t.Errorf("consistency = %q, want 10.0%%", stats.Consistency)
	}
}

func TestWorkouts_TodayEvent(t *testing.T) {
	w := newTestWorkouts(t, fixedClock(t, "2026-08-29 09:00:00"))

	ev, err := w.TodayEvent()
	if err != nil {
		t.Fatalf("TodayEvent failed: %v", err)
	}
	if ev == nil {
		t.Fatal("expected a synthetic event for Saturday")
	}
	if ev.ID != "workout:Saturday" || ev.Time != "08:00" || !ev.Enabled {
		t.Errorf("unexpected event: %+v", ev)
	}
}
