package engine

import (
	"log/slog"

	"github.com/lixenwraith/glowchase/parameter"
	"github.com/lixenwraith/glowchase/render"
	"github.com/lixenwraith/glowchase/sim"
	"github.com/lixenwraith/glowchase/vmath"
)

// SoundPlayer receives audio cues for state transitions
type SoundPlayer interface {
	PlayPounce(pitch float64)
	PlayChase()
}

// Options configures a host session
type Options struct {
	Seed     uint64
	Sim      sim.Config
	TickRate int
	Sound    SoundPlayer  // Optional
	Logger   *slog.Logger // Optional, defaults to slog.Default()
}

// Controller is the backend-neutral session: world ownership, pause and single step, reset, cues
// Both the terminal and the window host drive one from their own loop
type Controller struct {
	world  *sim.World
	opts   Options
	logger *slog.Logger

	paused  bool
	pending int // ticks requested by single step while paused
}

// NewController builds the world from the session seed
func NewController(opts Options) *Controller {
	if opts.TickRate <= 0 {
		opts.TickRate = parameter.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		world:  sim.NewWorld(opts.Sim, vmath.NewFastRand(opts.Seed)),
		opts:   opts,
		logger: logger,
	}
}

// World exposes the simulation for inspection
func (c *Controller) World() *sim.World {
	return c.world
}

// Options returns the resolved session options
func (c *Controller) Options() Options {
	return c.opts
}

// Logger returns the session logger
func (c *Controller) Logger() *slog.Logger {
	return c.logger
}

// Paused reports whether ticking is suspended
func (c *Controller) Paused() bool {
	return c.paused
}

// TogglePause suspends or resumes ticking, queued single steps are dropped on resume
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	if !c.paused {
		c.pending = 0
	}
	c.logger.Debug("pause toggled", "paused", c.paused, "tick", c.world.TickCount())
}

// RequestStep queues one tick, ignored unless paused
func (c *Controller) RequestStep() {
	if c.paused {
		c.pending++
	}
}

// Reset restarts from the session seed so a reset replays the same run
func (c *Controller) Reset() {
	rng := vmath.NewFastRand(c.opts.Seed)
	c.world.Reset(rng)
	c.pending = 0
	c.logger.Info("world reset", "seed", rng.Seed())
}

// Update advances the world when running, or by queued single steps when paused
// Returns the produced frame and whether a tick happened
func (c *Controller) Update() (sim.Frame, bool) {
	if c.paused {
		if c.pending == 0 {
			return sim.Frame{}, false
		}
		c.pending--
	}
	return c.Step(), true
}

// Step runs exactly one tick and dispatches its transitions
func (c *Controller) Step() sim.Frame {
	frame := c.world.Tick()
	for _, tr := range frame.Transitions {
		c.onTransition(tr)
	}
	return frame
}

// onTransition logs a state change and plays its cue
// Edges outside the behavior machine are reported and stay silent
func (c *Controller) onTransition(tr sim.Transition) {
	if !tr.Legal() {
		c.logger.Warn("illegal spider transition",
			"tick", tr.Tick,
			"spider", tr.SpiderID,
			"from", tr.From.String(),
			"to", tr.To.String(),
		)
		return
	}

	c.logger.Debug("spider transition",
		"tick", tr.Tick,
		"spider", tr.SpiderID,
		"from", tr.From.String(),
		"to", tr.To.String(),
	)

	if c.opts.Sound == nil {
		return
	}
	switch tr.To {
	case sim.StatePouncing:
		c.opts.Sound.PlayPounce(c.pouncePitch(tr.SpiderID))
	case sim.StateChasing:
		// Pounce always falls back to chasing, only the wander exit is audible
		if tr.From == sim.StateWandering {
			c.opts.Sound.PlayChase()
		}
	}
}

// pouncePitch scales the chirp by the spider's base speed relative to the slowest possible
func (c *Controller) pouncePitch(id int) float64 {
	spiders := c.world.Spiders()
	if id < 0 || id >= len(spiders) || c.opts.Sim.SpiderSpeedMin <= 0 {
		return 1
	}
	return spiders[id].Speed / c.opts.Sim.SpiderSpeedMin
}

// CurrentFrame returns the present shapes without advancing
func (c *Controller) CurrentFrame() sim.Frame {
	return sim.Frame{
		Tick:   c.world.TickCount(),
		Shapes: c.world.Shapes(),
	}
}

// Status collects the values shown by a host status line
func (c *Controller) Status() render.Status {
	spiders := c.world.Spiders()
	states := make([]sim.State, len(spiders))
	for i, s := range spiders {
		states[i] = s.State
	}
	return render.Status{
		Seed:    c.opts.Seed,
		Paused:  c.paused,
		Spiders: states,
	}
}
