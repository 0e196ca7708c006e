// Package main provides the trailhead CLI: read-only queries over the
// same trail index the TUI browses.
//
// Usage:
//
//	trailhead <command> [flags]
//
// Commands:
//
//	list        List trails, optionally filtered
//	show        Show one trail
//	categories  Show how many trails each category holds
//	stats       Show catalog statistics
//	version     Print version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/trailhead/internal/config"
	"github.com/Mr-Dark-debug/trailhead/internal/database"
	"github.com/Mr-Dark-debug/trailhead/internal/logging"
	"github.com/Mr-Dark-debug/trailhead/internal/trail"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every subcommand shares once the root command has
// run its pre-run hook.
type app struct {
	configDir  string
	jsonOutput bool

	log   *zap.Logger
	store database.Store
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "trailhead",
		Short: "Query the Trailhead trail catalog",
		Long: `trailhead answers read-only queries over the trail catalog that
the trailhead-tui browser shows. Run trailhead-tui for the interactive
view.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", config.DefaultDir(), "directory holding config.yaml")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output as JSON")

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newCategoriesCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)
	return root
}

// open loads config, builds the logger and indexes the catalog.
func (a *app) open(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	a.log = logger

	store, err := database.NewDBService(trail.Catalog())
	if err != nil {
		return fmt.Errorf("index catalog: %w", err)
	}
	a.store = store

	a.log.Debug("command started", zap.String("command", cmd.CommandPath()), zap.Strings("args", args))
	return nil
}

// close releases the store and flushes the logger.
func (a *app) close(cmd *cobra.Command, args []string) error {
	defer a.log.Sync()
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Trailhead v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}
}
