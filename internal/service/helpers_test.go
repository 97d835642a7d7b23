package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/routinely/internal/keyring"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/storage"
)

// fixedClock pins "now" so date arithmetic in tests is deterministic.
// 2026-08-29 is a Saturday.
func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("bad test time %q: %v", value, err)
	}
	return func() time.Time { return parsed }
}

func newTestReminders(t *testing.T, now func() time.Time) *Reminders {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "reminders.json"), models.DefaultReminders)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return NewReminders(store, now)
}

func newTestSleep(t *testing.T, now func() time.Time) (*Sleep, keyring.Memory) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "sleep.json"), models.DefaultSleep)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	creds := keyring.Memory{}
	return NewSleep(store, creds, now), creds
}

func newTestSupplements(t *testing.T, now func() time.Time) *Supplements {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "supplements.json"), models.DefaultSupplements)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return NewSupplements(store, now)
}

func newTestWorkouts(t *testing.T, now func() time.Time) *Workouts {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "workouts.json"), models.DefaultWorkouts)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return NewWorkouts(store, now)
}
