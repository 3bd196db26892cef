package sim

import (
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/physics"
	"github.com/lixenwraith/glowchase/vmath"
)

// Spider is an autonomous pursuer of the glow
type Spider struct {
	ID      int
	Kinetic core.Kinetic
	Color   core.RGB
	Speed   float64 // Base steering impulse, fixed at creation
	State   State
	Target  core.Point // Wander target, only re-rolled while Wandering
}

// NewSpider creates a spider in the Wandering state with zero velocity
func NewSpider(id int, pos core.Point, color core.RGB, speed float64, target core.Point) *Spider {
	return &Spider{
		ID:      id,
		Kinetic: core.Kinetic{X: pos.X, Y: pos.Y},
		Color:   color,
		Speed:   speed,
		State:   StateWandering,
		Target:  target,
	}
}

// Position returns the spider position
func (s *Spider) Position() core.Point {
	return s.Kinetic.Position()
}

// Update runs the handler for the current state once
// Returns the transition taken, if any
func (s *Spider) Update(glow core.Point, cfg *Config, rng *vmath.FastRand) (Transition, bool) {
	from := s.State

	switch s.State {
	case StateWandering:
		s.wander(glow, cfg, rng)
	case StateChasing:
		s.chase(glow, cfg)
	case StatePouncing:
		s.pounce(glow, cfg)
	}

	if s.State == from {
		return Transition{}, false
	}
	return Transition{SpiderID: s.ID, From: from, To: s.State}, true
}

func (s *Spider) wander(glow core.Point, cfg *Config, rng *vmath.FastRand) {
	if rng.Chance(cfg.RetargetChance) {
		s.Target = cfg.Bounds.RandomPoint(rng)
	}

	s.moveTowards(s.Target.X, s.Target.Y, 1, cfg)

	// Patrol mode measures against the possibly stale target, not the glow
	ref := s.Target
	if cfg.ChaseTrigger == ChaseNearGlow {
		ref = glow
	}
	if vmath.Distance(ref.X, ref.Y, s.Kinetic.X, s.Kinetic.Y) < cfg.WanderChaseDistance {
		s.State = StateChasing
	}
}

func (s *Spider) chase(glow core.Point, cfg *Config) {
	s.moveTowards(glow.X, glow.Y, 1, cfg)

	if vmath.Distance(glow.X, glow.Y, s.Kinetic.X, s.Kinetic.Y) < cfg.PounceDistance {
		s.State = StatePouncing
	}
}

// pounce is a single-tick burst, Chasing re-enters it while the glow stays in range
func (s *Spider) pounce(glow core.Point, cfg *Config) {
	s.moveTowards(glow.X, glow.Y, cfg.PounceMultiplier, cfg)
	s.State = StateChasing
}

func (s *Spider) moveTowards(targetX, targetY, speedMultiplier float64, cfg *Config) {
	profile := physics.SteeringProfile{Speed: s.Speed, Friction: cfg.Friction}
	physics.Steer(&s.Kinetic, targetX, targetY, &profile, speedMultiplier)
}

// AvoidOthers nudges the spider away from every other spider closer than the minimum separation
// Pushes accumulate over neighbors; velocity is untouched
func (s *Spider) AvoidOthers(all []*Spider, cfg *Config) {
	profile := physics.SeparationProfile{MinDistance: cfg.AvoidMinDistance, PushStep: cfg.AvoidPushStep}
	for _, other := range all {
		if other == s {
			continue
		}
		physics.Separate(&s.Kinetic, other.Kinetic.X, other.Kinetic.Y, &profile)
	}
}
