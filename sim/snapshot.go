package sim

import "github.com/lixenwraith/glowchase/core"

// PointSnapshot is a JSON-friendly coordinate
type PointSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SpiderSnapshot is a value copy of one spider's dynamic state
type SpiderSnapshot struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	State State   `json:"state"`
}

// Snapshot is a value copy of the whole world after a tick
type Snapshot struct {
	Tick    uint64           `json:"tick"`
	Glow    PointSnapshot    `json:"glow"`
	Spiders []SpiderSnapshot `json:"spiders"`
}

// Snapshot copies the current world state
func (w *World) Snapshot() Snapshot {
	gp := w.glow.Position()
	snap := Snapshot{
		Tick:    w.tick,
		Glow:    pointSnapshot(gp),
		Spiders: make([]SpiderSnapshot, len(w.spiders)),
	}
	for i, s := range w.spiders {
		snap.Spiders[i] = SpiderSnapshot{
			ID:    s.ID,
			X:     s.Kinetic.X,
			Y:     s.Kinetic.Y,
			VX:    s.Kinetic.VX,
			VY:    s.Kinetic.VY,
			State: s.State,
		}
	}
	return snap
}

func pointSnapshot(p core.Point) PointSnapshot {
	return PointSnapshot{X: p.X, Y: p.Y}
}
