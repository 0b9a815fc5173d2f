// Package vmath provides the small set of 2D vector helpers used by the
// battle simulation. All functions are pure.
package vmath

import "math"

// normEpsilon is the squared magnitude below which a vector is treated as zero
const normEpsilon = 0.0001

// Point is a position in world space
type Point struct {
	X float64
	Y float64
}

// Normalize returns the unit vector for (x, y), or (0, 0) when the vector is
// too short to have a meaningful direction
func Normalize(x, y float64) (float64, float64) {
	m := x*x + y*y
	if m < normEpsilon {
		return 0, 0
	}
	m = math.Sqrt(m)
	return x / m, y / m
}

// Distance returns the Euclidean distance between two points
func Distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// Rotate rotates (x, y) counter-clockwise by the given angle in degrees
func Rotate(x, y, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// Remap linearly maps v from the [dstMin, dstMax] range into [srcMin, srcMax].
// It is used to turn screen-grid coordinates into world coordinates.
func Remap(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	return srcMin + (srcMax-srcMin)*(v-dstMin)/(dstMax-dstMin)
}

// Rect is an axis-aligned rectangle
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// IsZero reports whether the rectangle is unset
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Contains reports whether the point lies inside the rectangle, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Clamp moves the point to the nearest position inside the rectangle
func (r Rect) Clamp(x, y float64) (float64, float64) {
	return clamp(x, r.MinX, r.MaxX), clamp(y, r.MinY, r.MaxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
