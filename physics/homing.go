package physics

import (
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/vmath"
)

// SteeringProfile defines steering-with-inertia parameters
type SteeringProfile struct {
	Speed    float64 // Impulse magnitude per steering step at multiplier 1
	Friction float64 // Velocity retention per step, in (0, 1)
}

// Steer applies one steering step toward target
// The impulse accumulates onto the existing velocity, then friction damps it and position integrates
// A body already at the target receives no impulse but keeps coasting on its damped velocity
func Steer(k *core.Kinetic, targetX, targetY float64, profile *SteeringProfile, speedMultiplier float64) {
	dirX, dirY := vmath.Normalize2D(targetX-k.X, targetY-k.Y)

	impulseX, impulseY := vmath.ScaleVector(dirX, dirY, profile.Speed*speedMultiplier)
	ApplyImpulse(k, impulseX, impulseY)
	Damp(k, profile.Friction)
	Integrate(k)
}
