package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/routine"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/utils"
)

// Supplements tracks daily supplement intake. The intake log is
// additive: every dose appends an entry, and compliance is computed
// against a fixed per-day denominator rather than a registry.
type Supplements struct {
	store *storage.Store[models.SupplementsDoc]
	now   func() time.Time
}

func NewSupplements(store *storage.Store[models.SupplementsDoc], now func() time.Time) *Supplements {
	if now == nil {
		now = time.Now
	}
	return &Supplements{store: store, now: now}
}

// Log appends one supplement intake for today.
func (s *Supplements) Log(supplement, loggedAt string) (string, error) {
	if strings.TrimSpace(supplement) == "" {
		return "", errors.InvalidInputf("supplement name cannot be empty")
	}
	if loggedAt == "" {
		loggedAt = "now"
	}

	today := utils.DateOf(s.now())
	err := s.store.Update(func(doc *models.SupplementsDoc) error {
		doc.Normalize()
		doc.Log[today] = append(doc.Log[today], models.SupplementIntake{
			Supplement: supplement,
			Time:       s.now(),
			LoggedAt:   loggedAt,
		})
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Logged %s ✓", supplement), nil
}

// DayCompliance is one date's slice of a supplement report.
type DayCompliance struct {
	Logged         int      `json:"logged" jsonschema:"doses logged that day"`
	ComplianceRate string   `json:"compliance_rate" jsonschema:"logged/daily target as a percentage"`
	Supplements    []string `json:"supplements" jsonschema:"names of logged supplements"`
}

// SupplementReport is the sliding-window intake report.
type SupplementReport struct {
	Period       string                   `json:"period" jsonschema:"human-readable window description"`
	DailyTargets map[string][]string      `json:"daily_targets" jsonschema:"routine slots and their supplements"`
	Compliance   map[string]DayCompliance `json:"compliance" jsonschema:"per-date intake, keyed by date"`
	Insights     []string                 `json:"insights" jsonschema:"threshold-based observations"`
}

// Report walks the trailing window and rates each date against the
// fixed daily target.
func (s *Supplements) Report(days int) (*SupplementReport, error) {
	if days <= 0 {
		days = constants.DefaultWindowDays
	}
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	report := &SupplementReport{
		Period:       fmt.Sprintf("Last %d days", days),
		DailyTargets: doc.Routine,
		Compliance:   map[string]DayCompliance{},
	}

	totalLogged := 0
	for _, date := range utils.WindowDates(s.now(), days) {
		logged := doc.Log[date]
		names := make([]string, 0, len(logged))
		for _, intake := range logged {
			names = append(names, intake.Supplement)
		}
		totalLogged += len(logged)
		report.Compliance[date] = DayCompliance{
			Logged:         len(logged),
			ComplianceRate: routine.FormatRate(routine.Rate(len(logged), constants.SupplementDailyTarget, 1), 1),
			Supplements:    names,
		}
	}

	overall := routine.Rate(totalLogged, days*constants.SupplementDailyTarget, 1)
	report.Insights = routine.CollectInsights([]routine.Insight{
		{When: overall >= constants.GoodComplianceThreshold, Message: "✅ Strong supplement routine! Keep it up."},
		{When: overall < 50, Message: "⚠️ Plenty of missed doses this week. Try pairing supplements with meals."},
	})

	return report, nil
}

// MissingResult lists what the routine still expects today.
type MissingResult struct {
	Logged       []string `json:"logged" jsonschema:"supplements logged today, lowercased"`
	Missing      []string `json:"missing" jsonschema:"routine supplements not logged yet"`
	PendingCount int      `json:"pending_count" jsonschema:"number of missing supplements"`
}

// Missing compares today's log against the full routine. Matching is
// case-insensitive.
func (s *Supplements) Missing() (*MissingResult, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	today := utils.DateOf(s.now())
	logged := map[string]bool{}
	loggedNames := []string{}
	for _, intake := range doc.Log[today] {
		name := strings.ToLower(intake.Supplement)
		logged[name] = true
		loggedNames = append(loggedNames, name)
	}

	missing := []string{}
	for _, name := range doc.AllSupplements() {
		if !logged[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}

	return &MissingResult{
		Logged:       loggedNames,
		Missing:      missing,
		PendingCount: len(missing),
	}, nil
}

// UpdateRoutine replaces the supplement list for one routine slot.
func (s *Supplements) UpdateRoutine(slot string, supplements []string) (string, error) {
	switch slot {
	case "morning", "afternoon", "evening":
	default:
		return "", errors.InvalidInputf("unknown routine slot %q (use morning, afternoon, or evening)", slot)
	}
	if len(supplements) == 0 {
		return "", errors.InvalidInputf("supplement list cannot be empty")
	}

	err := s.store.Update(func(doc *models.SupplementsDoc) error {
		doc.Normalize()
		doc.Routine[slot] = supplements
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated %s routine: %s", slot, strings.Join(supplements, ", ")), nil
}
