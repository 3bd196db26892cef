package physics

import (
	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/vmath"
)

// SeparationProfile defines positional push-apart parameters
type SeparationProfile struct {
	MinDistance float64 // Separation below which a push applies
	PushStep    float64 // Positional nudge length per neighbor
}

// Separate nudges k directly away from (otherX, otherY) when closer than MinDistance
// Position only, velocity is left untouched
// Coincident points have no defined direction and receive a zero push
// Returns true if the neighbor was within range
func Separate(k *core.Kinetic, otherX, otherY float64, profile *SeparationProfile) bool {
	dx := k.X - otherX
	dy := k.Y - otherY
	if vmath.MagnitudeSq(dx, dy) >= profile.MinDistance*profile.MinDistance {
		return false
	}

	dirX, dirY := vmath.Normalize2D(dx, dy)
	pushX, pushY := vmath.ScaleVector(dirX, dirY, profile.PushStep)
	k.X += pushX
	k.Y += pushY
	return true
}
