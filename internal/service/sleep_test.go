package service

import (
	"errors"
	"strings"
	"testing"

	apperrors "github.com/julianstephens/routinely/internal/errors"
)

func TestSleep_LogStoresUnderYesterday(t *testing.T) {
	s, _ := newTestSleep(t, fixedClock(t, "2026-08-29 07:30:00"))

	if _, err := s.Log(5, 4, ""); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	doc, err := s.store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	entry, ok := doc.Log["2026-08-28"]
	if !ok {
		t.Fatalf("expected entry under yesterday, got keys %v", keysOf(doc.Log))
	}
	if entry.Hours != 5 || entry.Quality != 4 || entry.Source != "manual" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if _, ok := doc.Log["2026-08-29"]; ok {
		t.Error("entry also stored under today")
	}
}

func TestSleep_LogValidation(t *testing.T) {
	s, _ := newTestSleep(t, fixedClock(t, "2026-08-29 07:30:00"))

	tests := []struct {
		name    string
		hours   float64
		quality int
	}{
		{"negative hours", -1, 7},
		{"too many hours", 25, 7},
		{"quality too low", 8, 0},
		{"quality too high", 8, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Log(tt.hours, tt.quality, ""); !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	// Nothing may have been written.
	doc, err := s.store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(doc.Log) != 0 {
		t.Errorf("rejected input mutated state: %+v", doc.Log)
	}
}

func TestSleep_StatsAveragesAndInsights(t *testing.T) {
	// Log three nights by advancing the clock one day at a time.
	s, _ := newTestSleep(t, fixedClock(t, "2026-08-27 07:00:00"))
	mustLog := func(hours float64, quality int) {
		t.Helper()
		if _, err := s.Log(hours, quality, ""); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	mustLog(5, 4) // stored under 2026-08-26
	s.now = fixedClock(t, "2026-08-28 07:00:00")
	mustLog(6, 5) // stored under 2026-08-27
	s.now = fixedClock(t, "2026-08-29 07:00:00")
	mustLog(5.5, 4) // stored under 2026-08-28

	result, err := s.Stats(7)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if len(result.Entries) != 3 {
		t.Fatalf("expected 3 entries in window, got %d", len(result.Entries))
	}
	if result.Averages == nil {
		t.Fatal("expected averages")
	}
	if result.Averages.SleepHours != 5.5 {
		t.Errorf("mean hours = %v, want 5.5", result.Averages.SleepHours)
	}
	if result.Averages.QualityScore != 4.3 {
		t.Errorf("mean quality = %v, want 4.3", result.Averages.QualityScore)
	}
	if result.DaysOnTarget != 0 {
		t.Errorf("days on target = %d, want 0", result.DaysOnTarget)
	}

	var sawLowSleep, sawLowQuality bool
	for _, insight := range result.Insights {
		if strings.Contains(insight, "Below target sleep") {
			sawLowSleep = true
		}
		if strings.Contains(insight, "Low sleep quality") {
			sawLowQuality = true
		}
	}
	if !sawLowSleep || !sawLowQuality {
		t.Errorf("expected low-sleep and low-quality insights, got %v", result.Insights)
	}
}

func TestSleep_StatsEmptyWindow(t *testing.T) {
	s, _ := newTestSleep(t, fixedClock(t, "2026-08-29 07:00:00"))

	result, err := s.Stats(7)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if result.Averages != nil {
		t.Errorf("expected no averages for empty window, got %+v", result.Averages)
	}
	if len(result.Insights) != 0 {
		t.Errorf("expected no insights for empty window, got %v", result.Insights)
	}
}

func TestSleep_RecoveryThresholds(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{8.5, "excellent"},
		{8, "excellent"},
		{7, "good"},
		{6, "fair"},
		{5, "poor"},
		{0, "poor"},
	}

	for _, tt := range tests {
		s, _ := newTestSleep(t, fixedClock(t, "2026-08-29 07:00:00"))
		if tt.hours > 0 {
			if _, err := s.Log(tt.hours, 7, ""); err != nil {
				t.Fatalf("Log failed: %v", err)
			}
		}

		// The entry lives under yesterday's date.
		result, err := s.Recommendations("2026-08-28")
		if err != nil {
			t.Fatalf("Recommendations failed: %v", err)
		}
		if result.RecoveryLevel != tt.want {
			t.Errorf("hours=%v: recovery_level = %q, want %q", tt.hours, result.RecoveryLevel, tt.want)
		}
		if len(result.Recommendations) == 0 {
			t.Errorf("hours=%v: expected recommendations", tt.hours)
		}
	}
}

func TestSleep_RecommendationsRejectsBadDate(t *testing.T) {
	s, _ := newTestSleep(t, fixedClock(t, "2026-08-29 07:00:00"))

	if _, err := s.Recommendations("yesterday"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSleep_ConnectStoresCredentialInKeyring(t *testing.T) {
	s, creds := newTestSleep(t, fixedClock(t, "2026-08-29 07:00:00"))

	if _, err := s.Connect("whoop", "secret-token"); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	secret, err := creds.Get("whoop")
	if err != nil || secret != "secret-token" {
		t.Errorf("expected credential in keyring, got %q, %v", secret, err)
	}

	doc, err := s.store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	integration, ok := doc.Integrations["whoop"]
	if !ok || !integration.Enabled {
		t.Errorf("expected integration recorded, got %+v", doc.Integrations)
	}
}

func TestSleep_ConnectRejectsUnknownIntegration(t *testing.T) {
	s, creds := newTestSleep(t, fixedClock(t, "2026-08-29 07:00:00"))

	if _, err := s.Connect("fitbit", "token"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(creds) != 0 {
		t.Errorf("rejected integration stored a credential: %v", creds)
	}
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
