package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/parameter"
	"github.com/lixenwraith/glowchase/render"
)

// Game drives a Controller on a tcell screen
type Game struct {
	*Controller

	screen   tcell.Screen
	renderer *render.TerminalRenderer
}

// NewGame builds the session and binds it to the screen
func NewGame(screen tcell.Screen, opts Options) *Game {
	return &Game{
		Controller: NewController(opts),
		screen:     screen,
		renderer:   render.NewTerminalRenderer(screen, opts.Sim.Bounds),
	}
}

// HandleEvent applies one input event, returns false when the session should end
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.TogglePause()
			case '.':
				g.RequestStep()
			case 'r':
				g.Reset()
			}
		}

	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.renderer.Resize(w, h)
		g.screen.Sync()
	}
	return true
}

// Draw renders the current world state with the status line
func (g *Game) Draw() {
	g.renderer.RenderFrame(g.CurrentFrame(), g.Status())
}

// tickInterval converts a rate to a ticker period
func tickInterval(rate int) time.Duration {
	if rate <= 0 || rate == parameter.TickRate {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(rate)
}

// Run is the host loop: input events and the tick clock multiplexed on one goroutine
// Returns nil on a quit key or context cancellation
func (g *Game) Run(ctx context.Context) error {
	// Deregister after the recover below has had its chance to use the screen
	defer core.SetCrashScreen(g.screen)()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts := g.Options()
	g.Logger().Info("terminal host started",
		"seed", opts.Seed,
		"tick_rate", opts.TickRate,
		"trigger", opts.Sim.ChaseTrigger.String(),
	)

	ticker := time.NewTicker(tickInterval(opts.TickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	g.Draw()

	for {
		select {
		case <-ctx.Done():
			g.Logger().Info("terminal host cancelled", "tick", g.World().TickCount())
			return nil

		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				g.Logger().Info("terminal host quit", "tick", g.World().TickCount())
				return nil
			}
			// Reflect pause and reset immediately
			g.Draw()

		case <-ticker.C:
			if _, ticked := g.Update(); ticked {
				g.Draw()
			}
		}
	}
}
