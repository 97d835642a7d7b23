package models

import "time"

// SupplementIntake is one logged supplement dose. Intake entries are
// additive: a date accumulates as many entries as were logged.
type SupplementIntake struct {
	Supplement string    `json:"supplement"`
	Time       time.Time `json:"time"`
	LoggedAt   string    `json:"logged_at"`
}

// SupplementsDoc is the persisted supplements document. The routine maps
// a time-of-day slot (morning/afternoon/evening) to supplement names.
type SupplementsDoc struct {
	Routine map[string][]string           `json:"routine"`
	Log     map[string][]SupplementIntake `json:"log"` // date -> intakes
}

// DefaultSupplements returns the first-run supplements document.
func DefaultSupplements() SupplementsDoc {
	return SupplementsDoc{
		Routine: map[string][]string{
			"morning":   {"Vitamin D", "Magnesium", "Omega-3", "Multivitamin"},
			"afternoon": {"Iron", "Vitamin C"},
			"evening":   {"Magnesium", "Zinc", "Melatonin"},
		},
		Log: map[string][]SupplementIntake{},
	}
}

func (d *SupplementsDoc) Normalize() {
	if d.Routine == nil {
		d.Routine = map[string][]string{}
	}
	if d.Log == nil {
		d.Log = map[string][]SupplementIntake{}
	}
}

// AllSupplements flattens the routine into a single list, morning first.
func (d *SupplementsDoc) AllSupplements() []string {
	var all []string
	for _, slot := range []string{"morning", "afternoon", "evening"} {
		all = append(all, d.Routine[slot]...)
	}
	return all
}
