package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/routinely/internal/cli"
	"github.com/julianstephens/routinely/internal/config"
	"github.com/julianstephens/routinely/internal/constants"
	"github.com/julianstephens/routinely/internal/errors"
	"github.com/julianstephens/routinely/internal/keyring"
	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
	"github.com/julianstephens/routinely/internal/notifier"
	"github.com/julianstephens/routinely/internal/service"
	"github.com/julianstephens/routinely/internal/storage"
	"github.com/julianstephens/routinely/internal/utils"
)

// cliRoot is the top-level command tree. The data-dir flag carries the
// env binding itself so kong resolves flag over env over default.
type cliRoot struct {
	Version kong.VersionFlag
	DataDir string `help:"Directory holding the per-domain JSON documents." env:"ROUTINELY_DATA_DIR" default:"~/.config/routinely"`
	Debug   bool   `help:"Enable verbose logging to stderr."`

	Reminder   cli.ReminderCmd   `cmd:"" help:"Manage daily reminders."`
	Sleep      cli.SleepCmd      `cmd:"" help:"Track sleep and recovery."`
	Supplement cli.SupplementCmd `cmd:"" help:"Track supplement intake."`
	Workout    cli.WorkoutCmd    `cmd:"" help:"Manage the training schedule."`
	Heartbeat  cli.HeartbeatCmd  `cmd:"" help:"Evaluate one heartbeat tick (called by the external scheduler)."`
	Mcp        cli.McpCmd        `cmd:"" help:"Serve all operations as MCP tools over stdio."`
}

var CLI cliRoot

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal-routine assistant: reminders, sleep, supplements, and workouts with heartbeat-driven nudges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	cfg.Debug = cfg.Debug || CLI.Debug

	dataDir, err := config.ExpandPath(CLI.DataDir)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	now, err := clock(cfg.Timezone)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx, err := buildContext(dataDir, now)
	if err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// clock returns a now function pinned to the configured timezone so
// every "today" computation in one process shares a calendar.
func clock(timezone string) (func() time.Time, error) {
	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

func buildContext(dataDir string, now func() time.Time) (*cli.Context, error) {
	remindersStore, err := storage.Open(filepath.Join(dataDir, constants.RemindersFile), models.DefaultReminders)
	if err != nil {
		return nil, err
	}
	sleepStore, err := storage.Open(filepath.Join(dataDir, constants.SleepFile), models.DefaultSleep)
	if err != nil {
		return nil, err
	}
	supplementsStore, err := storage.Open(filepath.Join(dataDir, constants.SupplementsFile), models.DefaultSupplements)
	if err != nil {
		return nil, err
	}
	workoutsStore, err := storage.Open(filepath.Join(dataDir, constants.WorkoutsFile), models.DefaultWorkouts)
	if err != nil {
		return nil, err
	}

	reminders := service.NewReminders(remindersStore, now)
	workouts := service.NewWorkouts(workoutsStore, now)

	return &cli.Context{
		Reminders:   reminders,
		Sleep:       service.NewSleep(sleepStore, keyring.OSKeyring{}, now),
		Supplements: service.NewSupplements(supplementsStore, now),
		Workouts:    workouts,
		Heartbeat:   service.NewHeartbeat(reminders, workouts, now),
		Notifier:    notifier.New(),
	}, nil
}
