// Trailhead TUI: browse the trail catalog by category, with a bottom
// navigation bar switching between the discover, map, saved and
// profile screens.
//
// Usage:
//
//	trailhead-tui [flags]
//
// Flags:
//
//	--config-dir     Directory holding config.yaml (default: ~/.trailhead)
//	--log-file       Write JSON log records to this file
//	--no-alt-screen  Draw inline instead of in the alternate screen
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/trailhead/internal/config"
	"github.com/Mr-Dark-debug/trailhead/internal/database"
	"github.com/Mr-Dark-debug/trailhead/internal/logging"
	"github.com/Mr-Dark-debug/trailhead/internal/trail"
	"github.com/Mr-Dark-debug/trailhead/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configDir, logFile string
	var noAltScreen bool

	flagSet := pflag.NewFlagSet("trailhead-tui", pflag.ContinueOnError)
	flagSet.StringVar(&configDir, "config-dir", config.DefaultDir(), "directory holding config.yaml")
	flagSet.StringVar(&logFile, "log-file", "", "write JSON log records to this file (overrides log.file)")
	flagSet.BoolVar(&noAltScreen, "no-alt-screen", false, "draw inline instead of in the alternate screen")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if flagSet.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if noAltScreen {
		cfg.AltScreen = false
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := database.NewDBService(trail.Catalog())
	if err != nil {
		return fmt.Errorf("indexing trail catalog: %w", err)
	}
	defer store.Close()

	model := tui.NewModel(store,
		tui.WithLogger(logger),
		tui.WithInsets(tui.FixedInsets{Top: cfg.InsetTop, Bottom: cfg.InsetBottom}),
	)

	opts := programOptions(cfg)
	logger.Info("starting ui",
		zap.Bool("alt_screen", cfg.AltScreen), zap.Bool("mouse", cfg.Mouse))

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// programOptions maps the terminal settings onto Bubble Tea options.
func programOptions(cfg config.Config) []tea.ProgramOption {
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}
