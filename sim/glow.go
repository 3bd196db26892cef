package sim

import (
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/vmath"
)

// Glow is the pursued light, a clamped random walk
type Glow struct {
	pos    core.Point
	speed  float64
	bounds core.Bounds
}

// NewGlow places a glow at pos, clamped into bounds
func NewGlow(pos core.Point, speed float64, bounds core.Bounds) *Glow {
	return &Glow{
		pos:    bounds.Clamp(pos),
		speed:  speed,
		bounds: bounds,
	}
}

// Advance displaces each axis by an independent uniform draw in [-speed, speed], X first, then clamps
func (g *Glow) Advance(rng *vmath.FastRand) {
	g.pos.X += rng.Uniform(-g.speed, g.speed)
	g.pos.Y += rng.Uniform(-g.speed, g.speed)
	g.pos = g.bounds.Clamp(g.pos)
}

// Position returns the current glow position
func (g *Glow) Position() core.Point {
	return g.pos
}
