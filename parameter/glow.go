package parameter

// Glow
const (
	// GlowSpeed is the per-axis random walk half-range per tick
	// Each axis moves by a uniform draw from [-GlowSpeed, GlowSpeed]
	GlowSpeed = 2.5

	// GlowRadius is the drawn circle radius
	GlowRadius = 10
)
