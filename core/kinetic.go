package core

// Kinetic is a point body with persistent velocity
type Kinetic struct {
	// X and Y are continuous world coordinates
	X, Y float64
	// VX and VY are velocity in world units per tick, carried across ticks
	VX, VY float64
}

// Position returns the body position as a Point
func (k Kinetic) Position() Point {
	return Point{X: k.X, Y: k.Y}
}
