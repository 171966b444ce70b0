package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koisuji02/webterm/internal/registry"
	"github.com/koisuji02/webterm/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded scores",
	Long: `Without an argument, shows a summary for every game with scores.
With a game id, shows its top 10 scores.

Examples:
  webterm scores
  webterm scores snake
  webterm scores tetris --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a game id")
		}
		return printSummary(cmd, store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'webterm games' to see available games", gameID)
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scores for %s cleared.\n", gameID)
		return nil
	}
	return printTop(cmd, store, gameID)
}

func printSummary(cmd *cobra.Command, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-8s  %-6s  %-6s  %-8s  %s\n", "Game", "Best", "Played", "Average", "Last played")
	fmt.Fprintf(out, "  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "----", "------", "-------", "-----------")
	for _, s := range stats {
		fmt.Fprintf(out, "  %-8s  %-6d  %-6d  %-8.1f  %s\n",
			s.GameID, s.HighScore, s.GamesCount, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printTop(cmd *cobra.Command, store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "High Scores - %s\n\n", registry.Title(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Type 'game %s' in the terminal to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-12s  %s\n",
			i+1, entry.Score, entry.Player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nBest: %d\n", best)
	return nil
}
