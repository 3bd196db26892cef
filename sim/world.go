package sim

import (
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/parameter"
	"github.com/lixenwraith/glowchase/vmath"
)

// World owns the glow and the spider population and advances them one tick at a time
// Not safe for concurrent use, a single host goroutine drives it
type World struct {
	cfg     Config
	rng     *vmath.FastRand
	glow    *Glow
	spiders []*Spider
	tick    uint64
}

// NewWorld creates the stock population: glow at the centre, spiders at random positions
func NewWorld(cfg Config, rng *vmath.FastRand) *World {
	w := &World{cfg: cfg, rng: rng}
	w.populate()
	return w
}

// NewWorldWith creates a world from explicit initial entities
func NewWorldWith(cfg Config, rng *vmath.FastRand, glow *Glow, spiders []*Spider) *World {
	return &World{
		cfg:     cfg,
		rng:     rng,
		glow:    glow,
		spiders: spiders,
	}
}

// populate draws per spider, in order: x, y, color, speed, target x, target y
func (w *World) populate() {
	w.glow = NewGlow(w.cfg.Bounds.Center(), w.cfg.GlowSpeed, w.cfg.Bounds)
	w.spiders = make([]*Spider, 0, parameter.SpiderCount)

	for i := 0; i < parameter.SpiderCount; i++ {
		pos := w.cfg.Bounds.RandomPoint(w.rng)
		color := core.RGBWhite
		if n := len(w.cfg.SpiderColors); n > 0 {
			color = w.cfg.SpiderColors[w.rng.Pick(n)]
		}
		speed := w.rng.Uniform(w.cfg.SpiderSpeedMin, w.cfg.SpiderSpeedMax)
		target := w.cfg.Bounds.RandomPoint(w.rng)

		w.spiders = append(w.spiders, NewSpider(i, pos, color, speed, target))
	}
}

// Reset rebuilds the stock population with a new random source and restarts the tick count
func (w *World) Reset(rng *vmath.FastRand) {
	w.rng = rng
	w.tick = 0
	w.populate()
}

// Tick advances the simulation by one step and returns the render-ready frame
// Order: glow, every spider's state handler, then a separate avoidance pass over all spiders
func (w *World) Tick() Frame {
	w.tick++
	w.glow.Advance(w.rng)
	glowPos := w.glow.Position()

	var transitions []Transition
	for _, s := range w.spiders {
		if tr, ok := s.Update(glowPos, &w.cfg, w.rng); ok {
			tr.Tick = w.tick
			transitions = append(transitions, tr)
		}
	}

	// Avoidance sees every spider after its motion for this tick
	for _, s := range w.spiders {
		s.AvoidOthers(w.spiders, &w.cfg)
	}

	return Frame{
		Tick:        w.tick,
		Shapes:      w.Shapes(),
		Transitions: transitions,
	}
}

// Shapes returns the current primitives without advancing, glow first
func (w *World) Shapes() []Shape {
	shapes := make([]Shape, 0, len(w.spiders)+1)

	gp := w.glow.Position()
	shapes = append(shapes, Shape{
		Kind:   ShapeCircle,
		Role:   RoleGlow,
		X:      int(gp.X),
		Y:      int(gp.Y),
		Radius: w.cfg.GlowRadius,
		Color:  w.cfg.GlowColor,
	})

	for _, s := range w.spiders {
		shapes = append(shapes, Shape{
			Kind:   ShapeCircle,
			Role:   RoleSpider,
			X:      int(s.Kinetic.X),
			Y:      int(s.Kinetic.Y),
			Radius: w.cfg.SpiderRadius,
			Color:  s.Color,
			State:  s.State,
		})
	}
	return shapes
}

// Glow returns the glow
func (w *World) Glow() *Glow {
	return w.glow
}

// Spiders returns the population in stable creation order
func (w *World) Spiders() []*Spider {
	return w.spiders
}

// TickCount returns the number of completed ticks
func (w *World) TickCount() uint64 {
	return w.tick
}

// Config returns the world tuning
func (w *World) Config() Config {
	return w.cfg
}
