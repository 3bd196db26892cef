package sim

import (
	"testing"

	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/vmath"
)

func TestGlow_StaysInBounds(t *testing.T) {
	bounds := core.Bounds{Width: 800, Height: 600}
	starts := []core.Point{
		{X: 0, Y: 0},
		{X: 800, Y: 600},
		{X: 0, Y: 600},
		{X: 400, Y: 300},
		{X: 799.5, Y: 0.25},
	}

	for i, start := range starts {
		g := NewGlow(start, 2.5, bounds)
		rng := vmath.NewFastRand(uint64(i + 1))

		for n := 0; n < 10000; n++ {
			g.Advance(rng)
			p := g.Position()
			if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
				t.Fatalf("start %+v step %d: position %+v out of bounds", start, n, p)
			}
		}
	}
}

func TestGlow_StepSize(t *testing.T) {
	bounds := core.Bounds{Width: 800, Height: 600}
	g := NewGlow(core.Point{X: 400, Y: 300}, 2.5, bounds)
	rng := vmath.NewFastRand(11)

	for n := 0; n < 1000; n++ {
		before := g.Position()
		g.Advance(rng)
		after := g.Position()

		if dx := after.X - before.X; dx < -2.5 || dx > 2.5 {
			t.Fatalf("step %d: dx = %v", n, dx)
		}
		if dy := after.Y - before.Y; dy < -2.5 || dy > 2.5 {
			t.Fatalf("step %d: dy = %v", n, dy)
		}
	}
}

func TestNewGlow_ClampsStart(t *testing.T) {
	g := NewGlow(core.Point{X: -10, Y: 900}, 2.5, core.Bounds{Width: 800, Height: 600})
	if p := g.Position(); p != (core.Point{X: 0, Y: 600}) {
		t.Errorf("Position = %+v, want (0, 600)", p)
	}
}
