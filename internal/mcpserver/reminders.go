package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/julianstephens/routinely/internal/service"
)

type emptyInput struct{}

type reminderIDInput struct {
	ID string `json:"id" jsonschema:"reminder identifier"`
}

type reminderAddInput struct {
	ID      string `json:"id" jsonschema:"reminder identifier"`
	Time    string `json:"time" jsonschema:"time of day (HH:MM)"`
	Message string `json:"message" jsonschema:"message shown when the reminder fires"`
}

type reminderSetTimeInput struct {
	ID   string `json:"id" jsonschema:"reminder identifier"`
	Time string `json:"time" jsonschema:"new time of day (HH:MM)"`
}

type reminderSetEnabledInput struct {
	ID      string `json:"id" jsonschema:"reminder identifier"`
	Enabled bool   `json:"enabled" jsonschema:"whether the reminder may trigger"`
}

type dateRangeInput struct {
	Start string `json:"start" jsonschema:"first date of the range (YYYY-MM-DD)"`
	End   string `json:"end" jsonschema:"last date of the range (YYYY-MM-DD)"`
}

type windowInput struct {
	Days int `json:"days,omitempty" jsonschema:"window size in days, 0 for the domain default"`
}

func registerReminderTools(server *mcp.Server, reminders *service.Reminders) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminders_today",
		Description: "Lists today's enabled reminders with completion state",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, *service.TodayResult, error) {
		result, err := reminders.Today()
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminder_complete",
		Description: "Marks a reminder completed for today",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in reminderIDInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := reminders.Complete(in.ID)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminder_skip",
		Description: "Skips a reminder for today",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in reminderIDInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := reminders.Skip(in.ID)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminder_add",
		Description: "Adds a reminder or overwrites an existing one with the same id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in reminderAddInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := reminders.Add(in.ID, in.Time, in.Message)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminder_update_time",
		Description: "Changes the scheduled time of an existing reminder",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in reminderSetTimeInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := reminders.UpdateTime(in.ID, in.Time)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminder_set_enabled",
		Description: "Enables or disables a reminder without deleting its history",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in reminderSetEnabledInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := reminders.SetEnabled(in.ID, in.Enabled)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminders_compliance",
		Description: "Reports reminder compliance over a trailing window of days",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in windowInput) (*mcp.CallToolResult, *service.ComplianceResult, error) {
		result, err := reminders.Compliance(in.Days)
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reminders_history",
		Description: "Lists recorded reminder entries between two dates, ascending",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in dateRangeInput) (*mcp.CallToolResult, *service.HistoryResult, error) {
		result, err := reminders.History(in.Start, in.End)
		return nil, result, err
	})
}
