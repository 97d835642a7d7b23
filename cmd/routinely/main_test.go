package main

import (
	"testing"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/routinely/internal/constants"
)

func parseCLI(t *testing.T, args []string) *cliRoot {
	t.Helper()
	var root cliRoot
	parser, err := kong.New(&root, kong.Vars{"version": constants.Version})
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}
	return &root
}

func TestDataDirPrecedence(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		root := parseCLI(t, []string{"reminder", "today"})
		if root.DataDir != "~/.config/routinely" {
			t.Errorf("DataDir = %q, want default", root.DataDir)
		}
	})

	t.Run("env beats default", func(t *testing.T) {
		t.Setenv("ROUTINELY_DATA_DIR", "/from/env")
		root := parseCLI(t, []string{"reminder", "today"})
		if root.DataDir != "/from/env" {
			t.Errorf("DataDir = %q, want /from/env", root.DataDir)
		}
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("ROUTINELY_DATA_DIR", "/from/env")
		root := parseCLI(t, []string{"--data-dir", "/from/flag", "reminder", "today"})
		if root.DataDir != "/from/flag" {
			t.Errorf("DataDir = %q, want /from/flag", root.DataDir)
		}
	})
}
