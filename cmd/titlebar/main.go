// Package main implements titlebar, a terminal demo of a custom window
// titlebar whose maximize/restore button stays in step with the window
// manager.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode bool
	themeName string
	asciiOnly bool
)

// Window flags
var (
	title          string
	startMaximized bool
	failQuery      bool
	queryDelay     time.Duration
	eventDelay     time.Duration
	queryTimeout   time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "titlebar",
		Short: "Custom window titlebar demo",
		Long: `titlebar - a custom window titlebar in your terminal

Draws a frameless window's titlebar with minimize, maximize/restore and close
buttons. The window itself is simulated: it answers the initial state query
late, reports maximize and restore events asynchronously, and can be toggled
from outside the titlebar, the way a real window manager would.`,
		Example: `  # Run the titlebar
  titlebar

  # Start maximized with a slow state query
  titlebar --start-maximized --query-delay 2s

  # Simulate a window manager that never answers the query
  titlebar --fail-query

  # Serve it over SSH
  titlebar ssh --port 2222

  # Edit configuration
  titlebar config edit`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme (bubbletint ID)")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii", false, "Use ASCII button glyphs")

	rootCmd.Flags().StringVar(&title, "title", "", "Window title")
	rootCmd.Flags().BoolVar(&startMaximized, "start-maximized", false, "Start with the window maximized")
	rootCmd.Flags().BoolVar(&failQuery, "fail-query", false, "Make the initial state query fail")
	rootCmd.Flags().DurationVar(&queryDelay, "query-delay", 0, "Latency of the initial state query")
	rootCmd.Flags().DurationVar(&eventDelay, "event-delay", 0, "Latency of maximize/restore events")
	rootCmd.Flags().DurationVar(&queryTimeout, "query-timeout", 0, "Give up on the state query after this long (0 waits forever)")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run titlebar as SSH server",
		Long: `Run titlebar as an SSH server

Every connection gets its own simulated window. The server will generate a
host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  titlebar ssh

  # Specify custom host key
  titlebar ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage titlebar configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the titlebar configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order. A running titlebar picks up
the saved file without restarting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	var forceReset bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults(forceReset)
		},
	}
	configResetCmd.Flags().BoolVarP(&forceReset, "yes", "y", false, "Do not ask for confirmation")

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(sshCmd, configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
