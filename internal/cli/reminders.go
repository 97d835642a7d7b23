package cli

import "fmt"

type ReminderCmd struct {
	Today      ReminderTodayCmd      `cmd:"" help:"Show today's reminders with completion state."`
	Complete   ReminderCompleteCmd   `cmd:"" help:"Mark a reminder completed for today."`
	Skip       ReminderSkipCmd       `cmd:"" help:"Skip a reminder for today."`
	Add        ReminderAddCmd        `cmd:"" help:"Add or overwrite a reminder."`
	SetTime    ReminderSetTimeCmd    `cmd:"" name:"set-time" help:"Change a reminder's scheduled time."`
	Enable     ReminderEnableCmd     `cmd:"" help:"Enable a reminder."`
	Disable    ReminderDisableCmd    `cmd:"" help:"Disable a reminder without deleting its history."`
	Compliance ReminderComplianceCmd `cmd:"" help:"Show reminder compliance over a trailing window."`
	History    ReminderHistoryCmd    `cmd:"" help:"Show recorded entries between two dates."`
}

type ReminderTodayCmd struct{}

func (c *ReminderTodayCmd) Run(ctx *Context) error {
	result, err := ctx.Reminders.Today()
	if err != nil {
		return err
	}
	return printJSON(result)
}

type ReminderCompleteCmd struct {
	ID string `arg:"" help:"Reminder identifier."`
}

func (c *ReminderCompleteCmd) Run(ctx *Context) error {
	msg, err := ctx.Reminders.Complete(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type ReminderSkipCmd struct {
	ID string `arg:"" help:"Reminder identifier."`
}

func (c *ReminderSkipCmd) Run(ctx *Context) error {
	msg, err := ctx.Reminders.Skip(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type ReminderAddCmd struct {
	ID      string `arg:"" help:"Reminder identifier."`
	Time    string `arg:"" help:"Time of day (HH:MM)."`
	Message string `arg:"" help:"Message shown when the reminder fires."`
}

func (c *ReminderAddCmd) Run(ctx *Context) error {
	msg, err := ctx.Reminders.Add(c.ID, c.Time, c.Message)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type ReminderSetTimeCmd struct {
	ID   string `arg:"" help:"Reminder identifier."`
	Time string `arg:"" help:"New time of day (HH:MM)."`
}

func (c *ReminderSetTimeCmd) Run(ctx *Context) error {
	msg, err := ctx.Reminders.UpdateTime(c.ID, c.Time)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type ReminderEnableCmd struct {
	ID string `arg:"" help:"Reminder identifier."`
}

func (c *ReminderEnableCmd) Run(ctx *Context) error {
	msg, err := ctx.Reminders.SetEnabled(c.ID, true)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type ReminderDisableCmd struct {
	ID string `arg:"" help:"Reminder identifier."`
}

func (c *ReminderDisableCmd) Run(ctx *Context) error {
	msg, err := ctx.Reminders.SetEnabled(c.ID, false)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type ReminderHistoryCmd struct {
	Start string `arg:"" help:"First date of the range (YYYY-MM-DD)."`
	End   string `arg:"" help:"Last date of the range (YYYY-MM-DD)."`
}

func (c *ReminderHistoryCmd) Run(ctx *Context) error {
	result, err := ctx.Reminders.History(c.Start, c.End)
	if err != nil {
		return err
	}
	return printJSON(result)
}

type ReminderComplianceCmd struct {
	Days int `help:"Window size in days." default:"7"`
}

func (c *ReminderComplianceCmd) Run(ctx *Context) error {
	result, err := ctx.Reminders.Compliance(c.Days)
	if err != nil {
		return err
	}
	return printJSON(result)
}
