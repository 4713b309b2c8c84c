// Package cmd implements the CLI commands for periodicdata using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Persistent flag variables.
var (
	flagConfig   string
	flagLogLevel string
	flagLogJSON  bool
)

// cfg is the effective configuration, resolved before any command runs.
var cfg = DefaultConfig()

// logger is shared by all commands once PersistentPreRunE has run.
var logger = log.Default()

var rootCmd = &cobra.Command{
	Use:   "periodicdata",
	Short: "periodicdata: fetch and normalize chemical element data",
	Long: `periodicdata scrapes the per-element data pages of periodictable.com and
normalizes every labeled property into a typed record with a value and units.

Usage:
  periodicdata fetch [numbers...] [flags]
  periodicdata parse <file.html> [flags]
  periodicdata fields`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to a TOML config file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flagLogJSON, "log-json", false, "Emit logs as JSON")
}

// setup loads the config file, applies explicitly set flags on top of it
// and configures the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	ApplyFlags(&loaded, cmd.Flags())
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	l, err := NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		return err
	}
	logger = l
	log.SetDefault(l)
	return nil
}

// Execute runs the root command. An interrupt cancels in-flight fetches.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
