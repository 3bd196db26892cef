package physics

import "github.com/lixenwraith/glowchase/core"

// ApplyImpulse adds a velocity delta
func ApplyImpulse(k *core.Kinetic, dvx, dvy float64) {
	k.VX += dvx
	k.VY += dvy
}

// Damp scales velocity on both axes
func Damp(k *core.Kinetic, factor float64) {
	k.VX *= factor
	k.VY *= factor
}

// Integrate advances position by one tick of velocity
func Integrate(k *core.Kinetic) {
	k.X += k.VX
	k.Y += k.VY
}
