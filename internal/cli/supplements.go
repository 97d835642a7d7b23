package cli

import "fmt"

type SupplementCmd struct {
	Log     SupplementLogCmd     `cmd:"" help:"Log a supplement dose."`
	Report  SupplementReportCmd  `cmd:"" help:"Show intake compliance over a trailing window."`
	Missing SupplementMissingCmd `cmd:"" help:"List routine supplements not logged today."`
	Routine SupplementRoutineCmd `cmd:"" help:"Replace the supplement list for a routine slot."`
}

type SupplementLogCmd struct {
	Name string `arg:"" help:"Supplement name."`
	At   string `help:"When it was taken (free-form, defaults to now)."`
}

func (c *SupplementLogCmd) Run(ctx *Context) error {
	msg, err := ctx.Supplements.Log(c.Name, c.At)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

type SupplementReportCmd struct {
	Days int `help:"Window size in days." default:"7"`
}

func (c *SupplementReportCmd) Run(ctx *Context) error {
	result, err := ctx.Supplements.Report(c.Days)
	if err != nil {
		return err
	}
	return printJSON(result)
}

type SupplementMissingCmd struct{}

func (c *SupplementMissingCmd) Run(ctx *Context) error {
	result, err := ctx.Supplements.Missing()
	if err != nil {
		return err
	}
	return printJSON(result)
}

type SupplementRoutineCmd struct {
	Slot        string   `arg:"" help:"Routine slot (morning, afternoon, evening)."`
	Supplements []string `arg:"" help:"Supplement names for the slot."`
}

func (c *SupplementRoutineCmd) Run(ctx *Context) error {
	msg, err := ctx.Supplements.UpdateRoutine(c.Slot, c.Supplements)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
