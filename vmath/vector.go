package vmath

import "math"

// Normalize2D returns unit vector, zero-safe
// A zero-length input yields (0, 0) rather than NaN
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns Euclidean vector length sqrt(x² + y²)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Distance returns Euclidean distance between two points
func Distance(ax, ay, bx, by float64) float64 {
	return Magnitude(bx-ax, by-ay)
}

// ScaleVector multiplies vector by scalar factor
func ScaleVector(x, y, factor float64) (sx, sy float64) {
	return x * factor, y * factor
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
