package models

// RemindersDoc is the persisted reminders document. Evolution is
// additive-only: fields introduced later must be optional and default on
// load rather than fail.
type RemindersDoc struct {
	Enabled   bool     `json:"enabled"`
	Reminders []Event  `json:"reminders"`
	Log       DailyLog `json:"log"`
}

// DefaultReminders returns the built-in first-run registry.
func DefaultReminders() RemindersDoc {
	return RemindersDoc{
		Enabled: true,
		Reminders: []Event{
			{
				ID:      "morning",
				Time:    "06:30",
				Message: "Good morning! Time to take your morning supplements. Have you done your morning routine?",
				Enabled: true,
			},
			{
				ID:      "pre_workout",
				Time:    "17:30",
				Message: "Pre-workout reminder! Prepare for your evening training session. Drink water and get ready.",
				Enabled: true,
			},
			{
				ID:      "evening",
				Time:    "21:00",
				Message: "Evening wind-down time. Did you complete your evening supplements? Start preparing for bed.",
				Enabled: true,
			},
			{
				ID:      "sleep_check",
				Time:    "22:30",
				Message: "Sleep reminder: Aim for 8 hours tonight for optimal recovery. Lights out soon?",
				Enabled: true,
			},
		},
		Log: DailyLog{},
	}
}

// Normalize re-initializes maps that may be missing from an older or
// hand-edited document.
func (d *RemindersDoc) Normalize() {
	if d.Log == nil {
		d.Log = DailyLog{}
	}
}
