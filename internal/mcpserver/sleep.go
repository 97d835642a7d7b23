package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/service"
)

type sleepLogInput struct {
	Hours   float64 `json:"hours" jsonschema:"hours slept last night"`
	Quality *int    `json:"quality,omitempty" jsonschema:"sleep quality on a 1-10 scale, defaults to 7"`
	Notes   string  `json:"notes,omitempty" jsonschema:"free-form notes"`
}

// qualityOrDefault applies the default only when the field was omitted.
// An explicit zero must reach validation, not be silently replaced.
func qualityOrDefault(quality *int) int {
	if quality == nil {
		return constants.DefaultSleepQuality
	}
	return *quality
}

type sleepRecoveryInput struct {
	Date string `json:"date,omitempty" jsonschema:"date to grade (YYYY-MM-DD), defaults to today"`
}

type sleepConnectInput struct {
	Integration string `json:"integration" jsonschema:"integration name: whoop, oura, or apple_health"`
	Credential  string `json:"credential" jsonschema:"API credential, stored in the OS keyring"`
}

func registerSleepTools(server *mcp.Server, sleep *service.Sleep) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sleep_log",
		Description: "Logs last night's sleep (stored under yesterday's date)",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in sleepLogInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := sleep.Log(in.Hours, qualityOrDefault(in.Quality), in.Notes)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sleep_stats",
		Description: "Reports sleep averages and insights over a trailing window of days",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in windowInput) (*mcp.CallToolResult, *service.SleepStatsResult, error) {
		result, err := sleep.Stats(in.Days)
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sleep_recovery",
		Description: "Grades recovery and recommends training intensity for a date",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in sleepRecoveryInput) (*mcp.CallToolResult, *service.RecoveryResult, error) {
		result, err := sleep.Recommendations(in.Date)
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sleep_connect",
		Description: "Connects a health-device integration, storing the credential in the OS keyring",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in sleepConnectInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := sleep.Connect(in.Integration, in.Credential)
		return nil, Confirmation{Message: msg}, err
	})
}
