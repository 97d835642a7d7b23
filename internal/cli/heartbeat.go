package cli

import (
	"context"

	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/mcpserver"
)

// HeartbeatCmd evaluates one heartbeat tick. The external scheduler is
// expected to run it at least once per minute; slower cadences can miss
// minute-exact triggers.
type HeartbeatCmd struct {
	Notify bool `help:"Also deliver the trigger to the desktop tray app."`
}

func (c *HeartbeatCmd) Run(ctx *Context) error {
	trigger, err := ctx.Heartbeat.Tick()
	if err != nil {
		return err
	}
	if trigger == nil {
		return nil
	}

	if c.Notify {
		if err := ctx.Notifier.Notify(trigger.Message); err != nil {
			// A missing tray app should not suppress the trigger output.
			logger.Warn("Tray notification failed", "error", err)
		}
	}

	return printJSON(trigger)
}

// McpCmd serves every operation as a named MCP tool over stdio so a
// hosting agent runtime can drive the engine directly.
type McpCmd struct{}

func (c *McpCmd) Run(ctx *Context) error {
	return mcpserver.Run(context.Background(), mcpserver.Deps{
		Reminders:   ctx.Reminders,
		Sleep:       ctx.Sleep,
		Supplements: ctx.Supplements,
		Workouts:    ctx.Workouts,
		Heartbeat:   ctx.Heartbeat,
	})
}
