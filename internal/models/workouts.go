package models

import "time"

// ScheduledWorkout is the planned session for one weekday.
type ScheduledWorkout struct {
	Time        string `json:"time"` // HH:MM format
	Type        string `json:"type"` // e.g. "CrossFit", "Gym", "Recovery"
	Description string `json:"description,omitempty"`
}

// WorkoutSession is one check-in/complete pair on a calendar date.
// Sessions are additive: multiple per day are allowed.
type WorkoutSession struct {
	Location    string     `json:"location"`
	CheckedInAt time.Time  `json:"checked_in_at"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// WorkoutsDoc is the persisted workouts document.
type WorkoutsDoc struct {
	Schedule map[string]ScheduledWorkout `json:"schedule"` // weekday name -> plan
	Log      map[string][]WorkoutSession `json:"log"`      // date -> sessions
}

// DefaultWorkouts returns the first-run weekly schedule.
func DefaultWorkouts() WorkoutsDoc {
	return WorkoutsDoc{
		Schedule: map[string]ScheduledWorkout{
			"Monday":    {Time: "18:00", Type: "CrossFit", Description: "Upper Body"},
			"Tuesday":   {Time: "06:30", Type: "Gym", Description: "Leg Day"},
			"Wednesday": {Time: "18:00", Type: "CrossFit", Description: "WOD"},
			"Thursday":  {Time: "06:30", Type: "Gym", Description: "Cardio"},
			"Friday":    {Time: "18:00", Type: "CrossFit", Description: "Strength"},
			"Saturday":  {Time: "08:00", Type: "CrossFit", Description: "Conditioning"},
			"Sunday":    {Time: "09:00", Type: "Recovery", Description: "Yoga/Stretching"},
		},
		Log: map[string][]WorkoutSession{},
	}
}

func (d *WorkoutsDoc) Normalize() {
	if d.Schedule == nil {
		d.Schedule = map[string]ScheduledWorkout{}
	}
	if d.Log == nil {
		d.Log = map[string][]WorkoutSession{}
	}
}
