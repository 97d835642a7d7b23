package service

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/routinely/internal/errors"
)

func TestReminders_AddIsIdempotentUpsert(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	if _, err := r.Add("hydrate", "10:30", "Drink water"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := r.Add("hydrate", "10:30", "Drink water"); err != nil {
		t.Fatalf("repeated Add failed: %v", err)
	}

	events, err := r.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	count := 0
	for _, ev := range events {
		if ev.ID == "hydrate" {
			count++
			if ev.Time != "10:30" || ev.Message != "Drink water" || !ev.Enabled {
				t.Errorf("unexpected event state: %+v", ev)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one hydrate entry, got %d", count)
	}
}

func TestReminders_AddRejectsBadTime(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	for _, bad := range []string{"25:00", "6:30", "soon", ""} {
		if _, err := r.Add("x", bad, "msg"); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("Add with time %q: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestReminders_UpdateTimeNotFound(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	_, err := r.UpdateTime("ghost", "09:00")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReminders_UpdateTimeLeavesMessageAndEnabled(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	if _, err := r.UpdateTime("morning", "07:00"); err != nil {
		t.Fatalf("UpdateTime failed: %v", err)
	}

	events, err := r.Events()
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	for _, ev := range events {
		if ev.ID == "morning" {
			if ev.Time != "07:00" {
				t.Errorf("expected time updated, got %q", ev.Time)
			}
			if ev.Message == "" || !ev.Enabled {
				t.Errorf("expected message and enabled untouched, got %+v", ev)
			}
			return
		}
	}
	t.Fatal("morning reminder missing")
}

func TestReminders_CompleteUnknownID(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	_, err := r.Complete("ghost")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReminders_TodayReflectsCompletionAndOrder(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	if _, err := r.Complete("morning"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if _, err := r.Skip("evening"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}

	result, err := r.Today()
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if result.Date != "2026-08-29" {
		t.Errorf("expected today's date, got %q", result.Date)
	}

	var last string
	for _, rem := range result.Reminders {
		if rem.Time < last {
			t.Errorf("reminders not sorted by time: %+v", result.Reminders)
		}
		last = rem.Time
		switch rem.ID {
		case "morning":
			if !rem.Completed || rem.Skipped {
				t.Errorf("morning state wrong: %+v", rem)
			}
		case "evening":
			if rem.Completed || !rem.Skipped {
				t.Errorf("evening state wrong: %+v", rem)
			}
		}
	}
}

func TestReminders_TodayExcludesDisabled(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	if _, err := r.SetEnabled("pre_workout", false); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}

	result, err := r.Today()
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	for _, rem := range result.Reminders {
		if rem.ID == "pre_workout" {
			t.Errorf("disabled reminder listed: %+v", rem)
		}
	}
}

// The worked example: two enabled reminders, one completed today, a
// one-day window splits 100/0 for a combined 50.
func TestReminders_ComplianceScenario(t *testing.T) {
	now := fixedClock(t, "2026-08-29 10:00:00")
	r := newTestReminders(t, now)

	for _, id := range []string{"pre_workout", "sleep_check"} {
		if _, err := r.SetEnabled(id, false); err != nil {
			t.Fatalf("SetEnabled failed: %v", err)
		}
	}
	if _, err := r.Complete("morning"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	result, err := r.Compliance(1)
	if err != nil {
		t.Fatalf("Compliance failed: %v", err)
	}

	if got := result.Stats["morning"].ComplianceRate; got != "100%" {
		t.Errorf("morning rate = %q, want 100%%", got)
	}
	if got := result.Stats["evening"].ComplianceRate; got != "0%" {
		t.Errorf("evening rate = %q, want 0%%", got)
	}
	if result.OverallRate != "50%" {
		t.Errorf("overall rate = %q, want 50%%", result.OverallRate)
	}
	if _, ok := result.Stats["pre_workout"]; ok {
		t.Error("disabled reminder counted in compliance stats")
	}
}

func TestReminders_ComplianceDeterministic(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))
	if _, err := r.Complete("morning"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	first, err := r.Compliance(7)
	if err != nil {
		t.Fatalf("Compliance failed: %v", err)
	}
	second, err := r.Compliance(7)
	if err != nil {
		t.Fatalf("Compliance failed: %v", err)
	}

	if first.OverallRate != second.OverallRate || len(first.Stats) != len(second.Stats) {
		t.Errorf("identical state produced different reports: %+v vs %+v", first, second)
	}
}

func TestReminders_ReenableRestoresCompliance(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-29 10:00:00"))

	if _, err := r.SetEnabled("morning", false); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	result, err := r.Compliance(7)
	if err != nil {
		t.Fatalf("Compliance failed: %v", err)
	}
	if _, ok := result.Stats["morning"]; ok {
		t.Fatal("disabled reminder still counted")
	}

	if _, err := r.SetEnabled("morning", true); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	result, err = r.Compliance(7)
	if err != nil {
		t.Fatalf("Compliance failed: %v", err)
	}
	if _, ok := result.Stats["morning"]; !ok {
		t.Error("re-enabled reminder missing from compliance without re-creation")
	}
}

func TestReminders_HistoryRange(t *testing.T) {
	r := newTestReminders(t, fixedClock(t, "2026-08-27 10:00:00"))
	if _, err := r.Complete("morning"); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	r.now = fixedClock(t, "2026-08-29 10:00:00")
	if _, err := r.Skip("evening"); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}

	result, err := r.History("2026-08-25", "2026-08-29")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(result.Days) != 2 {
		t.Fatalf("expected two recorded dates, got %+v", result.Days)
	}
	if result.Days[0].Date != "2026-08-27" || result.Days[1].Date != "2026-08-29" {
		t.Errorf("expected ascending dates with gaps omitted, got %+v", result.Days)
	}
	if result.Days[0].Entries[0].EventID != "morning" || result.Days[1].Entries[0].EventID != "evening" {
		t.Errorf("unexpected entries: %+v", result.Days)
	}

	empty, err := r.History("2026-08-20", "2026-08-24")
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(empty.Days) != 0 {
		t.Errorf("expected no recorded dates, got %+v", empty.Days)
	}

	if _, err := r.History("bad-date", "2026-08-29"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for malformed date, got %v", err)
	}
}
