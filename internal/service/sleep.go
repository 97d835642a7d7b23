package service

import (
	"fmt"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/keyring"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/routine"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/utils"
)

// Sleep tracks nightly sleep and produces recovery guidance. Sleep is
// reported the morning after, so a log call on date D stores the entry
// under D-1.
type Sleep struct {
	store *storage.Store[models.SleepDoc]
	creds keyring.Credentials
	now   func() time.Time
}

func NewSleep(store *storage.Store[models.SleepDoc], creds keyring.Credentials, now func() time.Time) *Sleep {
	if now == nil {
		now = time.Now
	}
	return &Sleep{store: store, creds: creds, now: now}
}

// Log records last night's sleep. Hours and quality are validated
// before any state is touched.
func (s *Sleep) Log(hours float64, quality int, notes string) (string, error) {
	if hours < 0 || hours > constants.MaxSleepHours {
		return "", errors.InvalidInputf("hours must be between 0 and %d, got %.1f", constants.MaxSleepHours, hours)
	}
	if quality < constants.MinSleepQuality || quality > constants.MaxSleepQuality {
		return "", errors.InvalidInputf("quality must be between %d and %d, got %d",
			constants.MinSleepQuality, constants.MaxSleepQuality, quality)
	}

	lastNight := utils.DateOf(s.now().AddDate(0, 0, -1))
	err := s.store.Update(func(doc *models.SleepDoc) error {
		doc.Normalize()
		doc.Log[lastNight] = models.SleepEntry{
			Hours:     hours,
			Quality:   quality,
			Notes:     notes,
			Timestamp: s.now(),
			Source:    "manual",
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Logged %.1fh sleep with quality %d/10 ✓", hours, quality), nil
}

// SleepAverages holds window-level means.
type SleepAverages struct {
	SleepHours     float64 `json:"sleep_hours" jsonschema:"mean hours slept"`
	QualityScore   float64 `json:"quality_score" jsonschema:"mean quality score"`
	ComplianceRate string  `json:"compliance_rate" jsonschema:"nights meeting the target as a percentage of logged nights"`
}

// SleepStatsResult is the sliding-window sleep report.
type SleepStatsResult struct {
	Period       string                       `json:"period" jsonschema:"human-readable window description"`
	Target       float64                      `json:"target" jsonschema:"target sleep hours"`
	Entries      map[string]models.SleepEntry `json:"entries" jsonschema:"logged nights keyed by date"`
	Averages     *SleepAverages               `json:"averages,omitempty" jsonschema:"window means, absent when nothing was logged"`
	DaysOnTarget int                          `json:"days_on_target" jsonschema:"nights meeting the target hours"`
	Insights     []string                     `json:"insights" jsonschema:"threshold-based observations"`
}

// Stats aggregates the trailing window of logged nights. Missing nights
// are absent from the entries map and excluded from the means.
func (s *Sleep) Stats(days int) (*SleepStatsResult, error) {
	if days <= 0 {
		days = constants.DefaultWindowDays
	}
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	result := &SleepStatsResult{
		Period:  fmt.Sprintf("Last %d days", days),
		Target:  doc.Settings.TargetSleepHours,
		Entries: map[string]models.SleepEntry{},
	}

	var totalHours, totalQuality float64
	count := 0
	for _, date := range utils.WindowDates(s.now(), days) {
		entry, ok := doc.Log[date]
		if !ok {
			continue
		}
		result.Entries[date] = entry
		totalHours += entry.Hours
		totalQuality += float64(entry.Quality)
		if entry.Hours >= doc.Settings.TargetSleepHours {
			result.DaysOnTarget++
		}
		count++
	}

	if count == 0 {
		result.Insights = []string{}
		return result, nil
	}

	avg := &SleepAverages{
		SleepHours:   routine.Round(totalHours/float64(count), 1),
		QualityScore: routine.Round(totalQuality/float64(count), 1),
	}
	compliance := routine.Rate(result.DaysOnTarget, count, 0)
	avg.ComplianceRate = routine.FormatRate(compliance, 0)
	result.Averages = avg

	result.Insights = routine.CollectInsights([]routine.Insight{
		{When: avg.SleepHours < doc.Settings.TargetSleepHours-1, Message: "⚠️ Below target sleep. Prioritize getting 1-2 more hours."},
		{When: avg.QualityScore < constants.LowQualityThreshold, Message: "💤 Low sleep quality detected. Check caffeine intake and bedtime routine."},
		{When: compliance >= constants.GoodComplianceThreshold, Message: "✅ Excellent sleep consistency! Keep it up."},
	})

	return result, nil
}

// RecoveryResult grades recovery from the night stored under the
// queried date.
type RecoveryResult struct {
	Date            string   `json:"date" jsonschema:"date the night is stored under"`
	SleepHours      float64  `json:"sleep_hours" jsonschema:"hours slept, 0 when unlogged"`
	RecoveryLevel   string   `json:"recovery_level" jsonschema:"excellent, good, fair, or poor"`
	Recommendations []string `json:"recommendations" jsonschema:"training guidance for the day"`
}

// Recommendations grades today's recovery from the most recent night on
// record for the given date (today when empty).
func (s *Sleep) Recommendations(date string) (*RecoveryResult, error) {
	if date == "" {
		date = utils.DateOf(s.now())
	} else if _, err := utils.ParseDate(date); err != nil {
		return nil, errors.InvalidInputf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	var hours float64
	if entry, ok := doc.Log[date]; ok {
		hours = entry.Hours
	}

	result := &RecoveryResult{Date: date, SleepHours: hours}
	switch {
	case hours >= constants.RecoveryExcellentHours:
		result.RecoveryLevel = "excellent"
		result.Recommendations = []string{
			"🟢 Excellent recovery - you can handle high intensity workouts",
			"Good day for heavy lifting or intense CrossFit sessions",
			"Consider pushing your training harder today",
		}
	case hours >= constants.RecoveryGoodHours:
		result.RecoveryLevel = "good"
		result.Recommendations = []string{
			"🟡 Good recovery - normal training intensity recommended",
			"Stick to your regular workout routine",
			"Focus on form and technique today",
		}
	case hours >= constants.RecoveryFairHours:
		result.RecoveryLevel = "fair"
		result.Recommendations = []string{
			"🟠 Fair recovery - reduce intensity slightly",
			"Consider a shorter or lighter workout session",
			"Focus on mobility and recovery work today",
		}
	default:
		result.RecoveryLevel = "poor"
		result.Recommendations = []string{
			"🔴 Limited recovery - rest day recommended",
			"Prioritize light activity or rest",
			"Schedule your intense training for tomorrow",
		}
	}

	return result, nil
}

// Connect enables a health-device integration. The credential goes to
// the OS keyring; the document only records that the integration exists.
func (s *Sleep) Connect(integration, credential string) (string, error) {
	switch integration {
	case "whoop", "oura", "apple_health":
	default:
		return "", errors.InvalidInputf("unknown integration %q (supported: whoop, oura, apple_health)", integration)
	}
	if credential == "" {
		return "", errors.InvalidInputf("credential cannot be empty")
	}

	if err := s.creds.Set(integration, credential); err != nil {
		return "", err
	}

	err := s.store.Update(func(doc *models.SleepDoc) error {
		doc.Normalize()
		doc.Integrations[integration] = models.Integration{
			Enabled:  true,
			SyncedAt: s.now(),
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to %s ✓ Credentials stored in the OS keyring.", integration), nil
}
