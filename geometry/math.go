// Package geometry holds the coordinate arithmetic behind arrow labels.
package geometry

import (
	"math"

	"fedsd/core"
)

// labelPi is the value of pi the label rotation has always been computed with.
// Rendered diagrams depend on it, so it is not math.Pi.
const labelPi = 3.14

// Degrees converts radians to degrees using labelPi.
func Degrees(rad float64) float64 {
	return rad * 180 / labelPi
}

// IsHorizontal reports whether the segment has no vertical extent.
func IsHorizontal(from, to core.Point) bool {
	return from.Y == to.Y
}

// CeilMidpoint returns the midpoint of the segment rounded up on both axes.
func CeilMidpoint(from, to core.Point) core.Point {
	return core.Point{
		X: math.Ceil((from.X + to.X) / 2),
		Y: math.Ceil((from.Y + to.Y) / 2),
	}
}

// LabelRotation returns the rotation in degrees applied to the label of an
// arrow from `from` to `to`. The angle only approximates the arrow's slope:
// leftward arrows are offset by -90 and the rest by +90.
// Horizontal segments have no defined slope and rotate by 0.
func LabelRotation(from, to core.Point) float64 {
	if IsHorizontal(from, to) {
		return 0
	}
	var rot float64
	if to.X < from.X {
		rot = -math.Ceil(Degrees(math.Atan((to.X-from.X)/(to.Y-from.Y)))) - 90
	} else {
		rot = -math.Ceil(Degrees(math.Atan((from.X-to.X)/(from.Y-to.Y)))) + 90
	}
	return Normalize(rot)
}

// Normalize folds negative zero into zero so it never prints as "-0".
func Normalize(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
