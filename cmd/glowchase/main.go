package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/glowchase/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glowchase",
		Short: "Spiders chasing a wandering glow",
		Long: `glowchase runs a small 2D simulation: a glow drifts randomly while
spiders wander, chase and pounce.

Without a subcommand it behaves like "glowchase run".`,
		SilenceUsage: true,
		RunE:         runSession,
	}
	addRunFlags(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newTraceCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "glowchase version %s\n", version)
		},
	}
}

// addSimFlags registers the flags every simulating command shares
func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().String("config", "", "Path to a YAML config file")
}

// resolveConfig layers flags over defaults, file and environment, then validates
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	// Flags missing from a command never report Changed
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("backend") {
		cfg.Host.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled, _ = flags.GetBool("audio")
	}
	if flags.Changed("debug") {
		cfg.Logging.Debug, _ = flags.GetBool("debug")
		if cfg.Logging.Debug {
			cfg.Logging.Level = "debug"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
