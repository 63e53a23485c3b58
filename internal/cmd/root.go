// Package cmd wires configuration, logging and the process collaborators
// into the procsweep TUI.
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"procsweep/internal/config"
	"procsweep/internal/logging"
	"procsweep/internal/process"
	"procsweep/internal/session"
	"procsweep/internal/tui"
)

// version is set at build time via ldflags
var version = "dev"

// runProgram runs the TUI until the user quits
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// flagBindings maps command-line flags to configuration keys
var flagBindings = map[string]string{
	"refresh":   "refresh.interval",
	"sort":      "sort.column",
	"desc":      "sort.descending",
	"log-file":  "log.file",
	"log-level": "log.level",
	"filter":    "filter",
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "procsweep",
		Short: "Interactive process monitor",
		Long: `procsweep lists running processes with their memory usage, lets you
sort and search them, and terminates the selected one after a confirmation.

Keys: ↑/k ↓/j move, g/G top/bottom, / search, x kill, p/n/m sort,
r refresh, ? help, q quit.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := config.NewViper(cfgFile)
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	rootCmd.SetVersionTemplate("procsweep {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/procsweep/config.yaml)")
	flags.Duration("refresh", session.DefaultRefreshInterval, "minimum time between two process snapshots")
	flags.String("sort", "pid", "initial sort column: pid, name or memory")
	flags.Bool("desc", false, "start with descending sort order")
	flags.String("log-file", "", "append debug logs to this file")
	flags.String("log-level", logging.LevelInfo, "log level: debug, info, warn or error")
	flags.String("filter", "", "initial search query")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the procsweep version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "procsweep %s\n", version)
		},
	}
}

// loadConfig binds the command's flags onto v and returns the merged,
// validated configuration
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	for name, key := range flagBindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return config.Load(v)
}

func run(cfg *config.Config) error {
	logger, err := logging.NewLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info().
		Str("version", version).
		Dur("refresh_interval", cfg.Refresh.Interval).
		Str("sort", cfg.Sort.Column).
		Msg("starting")

	opts := cfg.SessionOptions()
	opts.Logger = &logger.Logger
	state := session.New(process.NewSystemLister(), process.NewSystemTerminator(), opts)

	model := tui.New(state, tui.Options{
		PollInterval: cfg.Refresh.PollInterval,
		CallTimeout:  cfg.Refresh.CollectorTimeout,
		Logger:       &logger.Logger,
	})

	if err := runProgram(model); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("error running procsweep: %w", err)
	}
	logger.Info().Msg("exiting")
	return nil
}
