// Package mcpserver exposes every engine operation as a named MCP tool
// so a hosting agent runtime can call them with positional arguments
// and receive structured results. The transport is stdio: the agent
// owns the process lifetime.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/service"
)

// Deps carries the wired domain services into tool registration.
type Deps struct {
	Reminders   *service.Reminders
	Sleep       *service.Sleep
	Supplements *service.Supplements
	Workouts    *service.Workouts
	Heartbeat   *service.Heartbeat
}

// Confirmation is the result shape for mutating tools that return a
// human-readable confirmation string.
type Confirmation struct {
	Message string `json:"message" jsonschema:"human-readable confirmation"`
}

// NewServer builds the MCP server with every tool registered.
func NewServer(deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    constants.AppName,
		Version: constants.Version,
	}, nil)

	registerReminderTools(server, deps.Reminders)
	registerSleepTools(server, deps.Sleep)
	registerSupplementTools(server, deps.Supplements)
	registerWorkoutTools(server, deps.Workouts)
	registerHeartbeatTool(server, deps.Heartbeat)

	return server
}

// Run serves the MCP server over stdio until the context is cancelled
// or the agent closes the stream.
func Run(ctx context.Context, deps Deps) error {
	return NewServer(deps).Run(ctx, &mcp.StdioTransport{})
}
