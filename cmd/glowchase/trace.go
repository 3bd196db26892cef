package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lixenwraith/glowchase/sim"
	"github.com/lixenwraith/glowchase/vmath"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run headless and print one JSON line per tick",
		Long: `Run the simulation without a display and write the world state after
every tick as JSON Lines:

  {"tick":1,"glow":{"x":..,"y":..},"spiders":[{"id":0,"x":..,"y":..,"vx":..,"vy":..,"state":"wandering"}, ...]}`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ticks, _ := cmd.Flags().GetInt("ticks")
			if ticks < 0 {
				return fmt.Errorf("ticks must be non-negative, got %d", ticks)
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			world := sim.NewWorld(cfg.Simulation(), vmath.NewFastRand(cfg.Seed))
			return writeTrace(cmd.OutOrStdout(), world, ticks)
		},
	}
	addSimFlags(cmd)
	cmd.Flags().Int("ticks", 600, "Number of ticks to simulate")
	return cmd
}

// writeTrace advances world n ticks, encoding a snapshot after each
func writeTrace(w io.Writer, world *sim.World, n int) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for i := 0; i < n; i++ {
		world.Tick()
		if err := enc.Encode(world.Snapshot()); err != nil {
			return fmt.Errorf("encoding tick %d: %w", world.TickCount(), err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing trace: %w", err)
	}
	return nil
}
