package models

import (
	"time"

	"github.com/julianstephens/routinely/internal/constants"
)

// SleepSettings holds the per-user sleep targets.
type SleepSettings struct {
	TargetSleepHours float64 `json:"target_sleep_hours"`
	Bedtime          string  `json:"bedtime"`   // HH:MM format
	WakeTime         string  `json:"wake_time"` // HH:MM format
}

// SleepEntry is one night of sleep, keyed in the log by the date the
// sleep ended the night before (logging on D stores under D-1).
type SleepEntry struct {
	Hours     float64   `json:"hours"`
	Quality   int       `json:"quality"` // 1-10 scale
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// Integration records a connected health-device integration. The
// credential itself lives in the OS keyring, never in the document.
type Integration struct {
	Enabled  bool      `json:"enabled"`
	SyncedAt time.Time `json:"synced_at"`
}

// SleepDoc is the persisted sleep document.
type SleepDoc struct {
	Settings     SleepSettings          `json:"settings"`
	Log          map[string]SleepEntry  `json:"log"` // date -> entry
	Integrations map[string]Integration `json:"integrations"`
}

// DefaultSleep returns the first-run sleep document.
func DefaultSleep() SleepDoc {
	return SleepDoc{
		Settings: SleepSettings{
			TargetSleepHours: constants.DefaultTargetSleepHours,
			Bedtime:          constants.DefaultBedtime,
			WakeTime:         constants.DefaultWakeTime,
		},
		Log:          map[string]SleepEntry{},
		Integrations: map[string]Integration{},
	}
}

func (d *SleepDoc) Normalize() {
	if d.Log == nil {
		d.Log = map[string]SleepEntry{}
	}
	if d.Integrations == nil {
		d.Integrations = map[string]Integration{}
	}
	if d.Settings.TargetSleepHours == 0 {
		d.Settings.TargetSleepHours = constants.DefaultTargetSleepHours
	}
}
