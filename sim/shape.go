package sim

import "github.com/lixenwraith/glowchase/core"

// ShapeKind is the primitive type a host must draw
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
)

// ShapeRole tells a host which entity a shape stands for
type ShapeRole uint8

const (
	RoleGlow ShapeRole = iota
	RoleSpider
)

// Shape is a render-ready primitive in integer world coordinates
type Shape struct {
	Kind   ShapeKind
	Role   ShapeRole
	X, Y   int
	Radius int
	Color  core.RGB
	State  State // Spider shapes only
}

// Frame is the output of one tick
// Shapes lists the glow first, then spiders in creation order
type Frame struct {
	Tick        uint64
	Shapes      []Shape
	Transitions []Transition
}
