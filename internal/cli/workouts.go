package cli

import "fmt"

type WorkoutCmd struct {
	Schedule WorkoutScheduleCmd `cmd:"" help:"Set the planned session for a weekday."`
	Checkin  WorkoutCheckinCmd  `cmd:"" help:"Check in to a workout session."`
	Complete WorkoutCompleteCmd `cmd:"" help:"Complete today's most recent session."`
	Weekly   WorkoutWeeklyCmd   `cmd:"" help:"Show the weekly schedule."`
	Today    WorkoutTodayCmd    `cmd:"" help:"Show today's plan and sessions."`
	Stats    WorkoutStatsCmd    `cmd:"" help:"Show performance stats over a trailing window."`
}

type WorkoutScheduleCmd struct {
	Day         string `arg:"" help:"Weekday name (Monday through Sunday)."`
	Time        string `arg:"" help:"Time of day (HH:MM)."`
	Type        string `arg:"" help:"Workout type, e.g. CrossFit or Gym."`
	Description string `arg:"" optional:"" help:"Session description."`
}

func (c *WorkoutScheduleCmd) Run(ctx *Context) error {
	msg, err := ctx.Workouts.Schedule(c.Day, c.Time, c.Type, c.Description)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type WorkoutCheckinCmd struct {
	Location string `help:"Location type." default:"Gym"`
}

func (c *WorkoutCheckinCmd) Run(ctx *Context) error {
	msg, err := ctx.Workouts.CheckIn(c.Location)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type WorkoutCompleteCmd struct{}

func (c *WorkoutCompleteCmd) Run(ctx *Context) error {
	msg, err := ctx.Workouts.Complete()
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type WorkoutWeeklyCmd struct{}

func (c *WorkoutWeeklyCmd) Run(ctx *Context) error {
	result, err := ctx.Workouts.Weekly()
	if err != nil {
		return err
	}
	return printJSON(result)
}

type WorkoutTodayCmd struct{}

func (c *WorkoutTodayCmd) Run(ctx *Context) error {
	result, err := ctx.Workouts.Today()
	if err != nil {
		return err
	}
	return printJSON(result)
}

type WorkoutStatsCmd struct {
	Days int `help:"Window size in days." default:"30"`
}

func (c *WorkoutStatsCmd) Run(ctx *Context) error {
	result, err := ctx.Workouts.Stats(c.Days)
	if err != nil {
		return err
	}
	return printJSON(result)
}
