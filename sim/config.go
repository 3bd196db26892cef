package sim

import (
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/parameter"
)

// ChaseTrigger selects what the Wandering -> Chasing distance check measures against
type ChaseTrigger uint8

const (
	// ChaseOnPatrolPoint switches once the spider reaches its own wander target
	// The glow plays no part, a spider that never nears its patrol point keeps wandering
	ChaseOnPatrolPoint ChaseTrigger = iota
	// ChaseNearGlow switches once the spider comes within range of the glow
	ChaseNearGlow
)

func (c ChaseTrigger) String() string {
	switch c {
	case ChaseOnPatrolPoint:
		return "patrol"
	case ChaseNearGlow:
		return "glow"
	default:
		return "unknown"
	}
}

// Config holds every tuning value of a world, fixed for the world's lifetime
type Config struct {
	Bounds core.Bounds

	GlowSpeed  float64
	GlowRadius int
	GlowColor  core.RGB

	SpiderSpeedMin float64
	SpiderSpeedMax float64
	Friction       float64
	SpiderRadius   int
	SpiderColors   []core.RGB

	RetargetChance      float64
	WanderChaseDistance float64
	PounceDistance      float64
	PounceMultiplier    float64
	ChaseTrigger        ChaseTrigger

	AvoidMinDistance float64
	AvoidPushStep    float64
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Bounds: core.Bounds{Width: parameter.WorldWidth, Height: parameter.WorldHeight},

		GlowSpeed:  parameter.GlowSpeed,
		GlowRadius: parameter.GlowRadius,
		GlowColor:  parameter.GlowColor,

		SpiderSpeedMin: parameter.SpiderSpeedMin,
		SpiderSpeedMax: parameter.SpiderSpeedMax,
		Friction:       parameter.SpiderFriction,
		SpiderRadius:   parameter.SpiderRadius,
		SpiderColors:   append([]core.RGB(nil), parameter.SpiderColors...),

		RetargetChance:      parameter.WanderRetargetChance,
		WanderChaseDistance: parameter.WanderChaseDistance,
		PounceDistance:      parameter.PounceDistance,
		PounceMultiplier:    parameter.PounceSpeedMultiplier,
		ChaseTrigger:        ChaseOnPatrolPoint,

		AvoidMinDistance: parameter.AvoidanceMinDistance,
		AvoidPushStep:    parameter.AvoidancePushStep,
	}
}
