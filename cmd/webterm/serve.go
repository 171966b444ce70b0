package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/koisuji02/webterm/internal/platform/tui"
	"github.com/koisuji02/webterm/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webterm SSH server",
	Long: `Start an SSH server that gives every visitor their own terminal.

Each SSH connection gets a private shell with its own scrollback and
history. Content is shared read-only; scores go to the server database
under the visitor's SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.webterm/host_key

Links requested with github, linkedin or email are copied to the
visitor's clipboard with OSC 52 instead of opening a browser.

Examples:
  webterm serve                           # Listen on :23234 with auto-generated key
  webterm serve --ssh :2222               # Listen on port 2222
  webterm serve --host-key ./my_host_key  # Use specific host key

Visitors connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, env, registry.Default(), store, logger.WithPrefix("webterm-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+portOf(server.Addr()))
	return server.ListenAndServe()
}

// portOf returns the port part of a listen address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
