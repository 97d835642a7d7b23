package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/routinely/internal/notifier"
	"github.com/julianstephens/routinely/internal/service"
)

// Context carries the wired domain services into every command.
type Context struct {
	Reminders   *service.Reminders
	Sleep       *service.Sleep
	Supplements *service.Supplements
	Workouts    *service.Workouts
	Heartbeat   *service.Heartbeat
	Notifier    *notifier.Notifier
}

// printJSON renders a structured result the way the hosting agent
// receives it: pretty-printed JSON on stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
