package parameter

// World
const (
	// WorldWidth is the horizontal extent of the plane in world units
	WorldWidth = 800

	// WorldHeight is the vertical extent of the plane in world units
	WorldHeight = 600

	// SpiderCount is the fixed spider population
	SpiderCount = 2
)
