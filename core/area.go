package core

import "github.com/lixenwraith/glowchase/vmath"

// Point is a continuous world coordinate
type Point struct {
	X, Y float64
}

// Bounds is the world rectangle [0, Width] x [0, Height]
type Bounds struct {
	Width, Height float64
}

// Center returns the world centre using integer halving, matching integer screen dimensions
func (b Bounds) Center() Point {
	return Point{
		X: float64(int(b.Width) / 2),
		Y: float64(int(b.Height) / 2),
	}
}

// Clamp pulls each axis independently into the rectangle
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: vmath.Clamp(p.X, 0, b.Width),
		Y: vmath.Clamp(p.Y, 0, b.Height),
	}
}

// Contains checks if point is within bounds, edges included
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// RandomPoint returns an integer-valued point with both axes drawn inclusive of the far edge
// X is drawn before Y
func (b Bounds) RandomPoint(rng *vmath.FastRand) Point {
	x := rng.IntRange(0, int(b.Width))
	y := rng.IntRange(0, int(b.Height))
	return Point{X: float64(x), Y: float64(y)}
}
