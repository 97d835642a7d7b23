package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/julianstephens/routinely/internal/routine"
	"github.com/julianstephens/routinely/internal/service"
)

type workoutScheduleInput struct {
	Day         string `json:"day" jsonschema:"weekday name (Monday through Sunday)"`
	Time        string `json:"time" jsonschema:"time of day (HH:MM)"`
	Type        string `json:"type" jsonschema:"workout type, e.g. CrossFit or Gym"`
	Description string `json:"description,omitempty" jsonschema:"session description"`
}

type workoutCheckinInput struct {
	Location string `json:"location,omitempty" jsonschema:"location type, defaults to Gym"`
}

func registerWorkoutTools(server *mcp.Server, workouts *service.Workouts) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "workout_schedule",
		Description: "Sets the planned session for one weekday",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in workoutScheduleInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := workouts.Schedule(in.Day, in.Time, in.Type, in.Description)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workout_checkin",
		Description: "Checks in to a workout session for today",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in workoutCheckinInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := workouts.CheckIn(in.Location)
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workout_complete",
		Description: "Completes today's most recent workout session",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, Confirmation, error) {
		msg, err := workouts.Complete()
		return nil, Confirmation{Message: msg}, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workout_weekly",
		Description: "Shows the weekly training schedule",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, *service.WeeklyResult, error) {
		result, err := workouts.Weekly()
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workout_today",
		Description: "Shows today's planned workout and logged sessions",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, *service.TodayWorkoutResult, error) {
		result, err := workouts.Today()
		return nil, result, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "workout_stats",
		Description: "Reports training performance over a trailing window of days",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in windowInput) (*mcp.CallToolResult, *service.WorkoutStats, error) {
		result, err := workouts.Stats(in.Days)
		return nil, result, err
	})
}

// heartbeatResult wraps the optional trigger so a no-op tick still
// returns a well-formed object.
type heartbeatResult struct {
	Trigger *routine.Trigger `json:"trigger,omitempty" jsonschema:"the trigger that fired, absent when nothing is due"`
}

func registerHeartbeatTool(server *mcp.Server, heartbeat *service.Heartbeat) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "heartbeat",
		Description: "Evaluates one heartbeat tick and returns at most one trigger",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, heartbeatResult, error) {
		trigger, err := heartbeat.Tick()
		return nil, heartbeatResult{Trigger: trigger}, err
	})
}
