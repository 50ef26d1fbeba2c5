// Package cli wires the todo command line: flags, config loading and the
// TUI program.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/todo/internal/app"
	"github.com/riordanpawley/todo/internal/config"
	"github.com/riordanpawley/todo/internal/logging"
	"github.com/riordanpawley/todo/internal/tasklist"
	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// runProgram runs the TUI until the user quits. Tests swap it out.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// options holds flag values that override the loaded config
type options struct {
	configPath string
	appendMode bool
	positional bool
	logFile    string
	minWidth   int
}

// NewRootCmd builds the todo command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A terminal to-do list",
		Long: `todo is a small terminal to-do list. Type a task and press Enter to add it,
Tab to the list and press Space to mark it done.

Nothing is saved: the list lives only as long as the program runs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default .todo.yaml or ~/.config/todo/.todo.yaml)")
	flags.BoolVar(&opts.appendMode, "append", false, "add new tasks at the end of the list")
	flags.BoolVar(&opts.positional, "positional", false, "address rows by position instead of stable key")
	flags.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	flags.IntVar(&opts.minWidth, "min-width", 0, "minimum window width in columns")

	root.AddCommand(newConfigCmd(opts), newVersionCmd())
	return root
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// loadConfig reads the config and applies any flags the user set
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("append") && opts.appendMode {
		cfg.Tasks.Placement = tasklist.PlaceBack.String()
	}
	if flags.Changed("positional") && opts.positional {
		cfg.Tasks.Addressing = tasklist.AddressIndex.String()
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("min-width") {
		cfg.UI.MinWidth = opts.minWidth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cfg *config.Config) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeQuietly(closer, logger)

	logger.Info("starting",
		"version", appVersion,
		"placement", cfg.Tasks.Placement,
		"addressing", cfg.Tasks.Addressing)

	if err := runProgram(app.New(cfg, logger)); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}

	logger.Info("exiting")
	return nil
}

func closeQuietly(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to close log file", "error", err)
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
