package cli

import "fmt"

type SleepCmd struct {
	Log      SleepLogCmd      `cmd:"" help:"Log last night's sleep."`
	Stats    SleepStatsCmd    `cmd:"" help:"Show sleep stats over a trailing window."`
	Recovery SleepRecoveryCmd `cmd:"" help:"Get recovery recommendations."`
	Connect  SleepConnectCmd  `cmd:"" help:"Connect a health-device integration."`
}

type SleepLogCmd struct {
	Hours   float64 `arg:"" help:"Hours slept."`
	Quality int     `help:"Sleep quality on a 1-10 scale." default:"7"`
	Notes   string  `help:"Free-form notes."`
}

func (c *SleepLogCmd) Run(ctx *Context) error {
	msg, err := ctx.Sleep.Log(c.Hours, c.Quality, c.Notes)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type SleepStatsCmd struct {
	Days int `help:"Window size in days." default:"7"`
}

func (c *SleepStatsCmd) Run(ctx *Context) error {
	result, err := ctx.Sleep.Stats(c.Days)
	if err != nil {
		return err
	}
	return printJSON(result)
}

type SleepRecoveryCmd struct {
	Date string `help:"Date to grade (YYYY-MM-DD), defaults to today."`
}

func (c *SleepRecoveryCmd) Run(ctx *Context) error {
	result, err := ctx.Sleep.Recommendations(c.Date)
	if err != nil {
		return err
	}
	return printJSON(result)
}

type SleepConnectCmd struct {
	Integration string `arg:"" help:"Integration name (whoop, oura, apple_health)."`
	Credential  string `arg:"" help:"API credential, stored in the OS keyring."`
}

func (c *SleepConnectCmd) Run(ctx *Context) error {
	msg, err := ctx.Sleep.Connect(c.Integration, c.Credential)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
