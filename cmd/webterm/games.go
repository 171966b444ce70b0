package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koisuji02/webterm/internal/registry"
)

var gamesCmd = &cobra.Command{
	Use:     "games",
	Aliases: []string{"list"},
	Short:   "List all available games",
	Long:    `Shows the games that the terminal's game command can launch.`,
	Args:    cobra.NoArgs,
	Run:     runGames,
}

func runGames(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type 'game <id>' inside the terminal to play.")
}
