package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glowchase/audio"
	"github.com/lixenwraith/glowchase/config"
	"github.com/lixenwraith/glowchase/engine"
	"github.com/spf13/cobra"
)

// hostRunner drives a session on one backend until it ends
type hostRunner func(ctx context.Context, opts engine.Options) error

// hosts maps backend names to runners
// Backends with heavy platform requirements register from their own build-tagged file
var hosts = map[string]hostRunner{
	config.BackendTerminal: runTerminal,
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation in a terminal or a window",
		Long: `Run the simulation interactively.

Keys: Esc, Ctrl-C or q quit; space pauses; "." steps one tick while paused;
r resets the population from the same seed.`,
		RunE: runSession,
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	addSimFlags(cmd)
	cmd.Flags().String("backend", config.BackendTerminal, "Host backend: terminal or window")
	cmd.Flags().Bool("audio", false, "Play sound cues on chase and pounce")
	cmd.Flags().Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	host, ok := hosts[cfg.Host.Backend]
	if !ok {
		return fmt.Errorf("backend %q is not available in this build", cfg.Host.Backend)
	}

	if logFile := setupLogging(cfg.Logging.Debug, cfg.Logging.Level); logFile != nil {
		defer logFile.Close()
	}

	slog.Info("starting session",
		"version", version,
		"backend", cfg.Host.Backend,
		"seed", cfg.Seed,
		"tick_rate", cfg.Host.TickRate,
		"audio", cfg.Audio.Enabled,
		"trigger", cfg.Behavior.ChaseTrigger,
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := engine.Options{
		Seed:     cfg.Seed,
		Sim:      cfg.Simulation(),
		TickRate: cfg.Host.TickRate,
		Logger:   slog.Default(),
	}

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the session runs silent
			slog.Warn("audio initialization failed", "error", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	err = host(ctx, opts)
	slog.Info("session ended", "error", err)
	return err
}

func runTerminal(ctx context.Context, opts engine.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	return engine.NewGame(screen, opts).Run(ctx)
}
