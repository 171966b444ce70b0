// webterm is a portfolio terminal: a small shell that answers questions about
// its owner and hosts two grid games, run locally or served over SSH.
//
// Usage:
//
//	webterm                  - Start the terminal (same as run)
//	webterm run              - Start the terminal in this shell
//	webterm serve            - Start SSH server for remote visitors
//	webterm games            - List available games
//	webterm scores [game]    - Show recorded scores
//
// Global flags:
//
//	--seed <value>           - Set RNG seed for reproducible games
//	--db <path>              - Set database path (default: ~/.webterm/scores.db)
//	--content <path>         - Use a custom content.yaml
//	--projects-dir <dir>     - Directory holding projectLists.json and projectsMeta.json
package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/koisuji02/webterm/internal/games/blocks"
	_ "github.com/koisuji02/webterm/internal/games/snake"
	"github.com/koisuji02/webterm/internal/storage"
)

var (
	// Global flags
	flagSeed        int64
	flagDBPath      string
	flagContent     string
	flagProjectsDir string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "webterm",
})

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "error", err)
	}
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "webterm",
	Short: "webterm - a portfolio you can ssh into",
	Long: `webterm is a terminal-style portfolio. Type commands to read about its
owner, browse projects and notes, or play snake and tetris.

Available commands:
  run      - Start the terminal here (default)
  serve    - Start SSH server for remote visitors
  games    - Show all available games
  scores   - View recorded scores

Environment:
  WEBTERM_CONTENT, WEBTERM_PROJECTS_DIR and WEBTERM_DB provide defaults
  for the matching flags. A .env file in the working directory is loaded
  first.

Examples:
  webterm
  webterm run --seed 42
  webterm serve --ssh :2222
  webterm scores tetris`,
	SilenceUsage: true,
	RunE:         runTerminal,
}

func init() {
	// Flags read their defaults after .env has been loaded
	cobra.OnInitialize(applyEnvDefaults)

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database (env WEBTERM_DB)")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Path to a custom content.yaml (env WEBTERM_CONTENT)")
	rootCmd.PersistentFlags().StringVar(&flagProjectsDir, "projects-dir", "", "Directory with project documents (env WEBTERM_PROJECTS_DIR)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults() {
	flags := rootCmd.PersistentFlags()
	for name, env := range map[string]string{
		"db":           "WEBTERM_DB",
		"content":      "WEBTERM_CONTENT",
		"projects-dir": "WEBTERM_PROJECTS_DIR",
	} {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			logger.Warn("ignoring environment value", "env", env, "error", err)
		}
	}
}
