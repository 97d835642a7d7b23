package constants

const (
	AppName           = "routinely"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/routinely"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Keyring constants
	KeyringService = "routinely"

	// Notify constants
	NotifierLockfileName   = "routinely-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.routinely"

	// Domain data files, one JSON document per domain
	RemindersFile   = "reminders.json"
	SleepFile       = "sleep.json"
	SupplementsFile = "supplements.json"
	WorkoutsFile    = "workouts.json"
)

// Entry status constants
const (
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
	StatusNone      = "none"
)

// Workout session status constants
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// Compliance window defaults
const (
	DefaultWindowDays = 7
	WorkoutWindowDays = 30

	// SupplementDailyTarget is the fixed per-day denominator for supplement
	// compliance. The routine has no per-event registry, so the rate is
	// computed against a configured daily total instead.
	SupplementDailyTarget = 10
)

// Sleep recovery thresholds (hours)
const (
	RecoveryExcellentHours = 8
	RecoveryGoodHours      = 7
	RecoveryFairHours      = 6

	DefaultTargetSleepHours = 8
	DefaultBedtime          = "23:00"
	DefaultWakeTime         = "07:00"

	DefaultSleepQuality = 7

	MinSleepQuality = 1
	MaxSleepQuality = 10
	MaxSleepHours   = 24
)

// Compliance insight thresholds
const (
	LowQualityThreshold     = 6.0
	GoodComplianceThreshold = 80.0
)
