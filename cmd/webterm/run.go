package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/koisuji02/webterm/internal/core"
	"github.com/koisuji02/webterm/internal/platform/tui"
	"github.com/koisuji02/webterm/internal/registry"
	"github.com/koisuji02/webterm/internal/shell"
	"github.com/koisuji02/webterm/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the terminal in this shell",
	Long: `Start an interactive webterm session in the current terminal.

Controls:
  Enter        - Run the typed command
  Up/Down      - Walk the command history
  PgUp/PgDn    - Scroll the output
  Esc          - Leave a running game
  Ctrl+C       - Quit

Examples:
  webterm run
  webterm run --seed 7
  webterm run --content ./content.yaml --projects-dir ./public`,
	Args: cobra.NoArgs,
	RunE: runTerminal,
}

func runTerminal(_ *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	opts := tui.Options{
		Player: localPlayer(),
		Logger: logger,
		Width:  cfg.ScreenW,
		Height: cfg.ScreenH,
	}

	// Open score storage (optional - continue without it on failure)
	if store := openStore(); store != nil {
		defer store.Close()
		env.Scores = store
		opts.Store = store
	}

	opts.Shell = shell.New(shell.Options{
		Env:      env,
		Launcher: registry.Default(),
		Screen:   cfg,
	})

	return tui.Run(opts)
}

func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.LocalPlayer
}
