package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/julianstephens/routinely/internal/service"
)

type supplementLogInput struct {
	Supplement string `json:"supplement" jsonschema:"supplement name"`
	At         string `json:"at,omitempty" jsonschema:"when it was taken (free-form, defaults to now)"`
}

type supplementRoutineInput struct {
	Slot        string   `json:"slot" jsonschema:"routine slot: morning, afternoon, or evening"`
	Supplements []string `json:"supplements" jsonschema:"supplement names for the slot"`
}

func registerSupplementTools(server *mcp.Server, supplements *service.Supplements) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "supplement_log",
		Description: "Logs one supplement dose for today (additive)",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in supplementLogInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := supplements.Log(in.Supplement, in.At)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "supplement_report",
		Description: "Reports supplement intake compliance over a trailing window of days",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in windowInput) (*mcp.CallToolResult, *service.SupplementReport, error) {
		result, err := supplements.Report(in.Days)
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "supplement_missing",
		Description: "Lists routine supplements not logged today",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, *service.MissingResult, error) {
		result, err := supplements.Missing()
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "supplement_routine_update",
		Description: "Replaces the supplement list for one routine slot",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in supplementRoutineInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := supplements.UpdateRoutine(in.Slot, in.Supplements)
		return nil, Confirmation{Message: msg}, err
	})
}
