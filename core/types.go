// Package core contains the fundamental types used throughout the fedsd renderer.
package core

// Point represents a position in image space. The origin is the top-left
// corner and y grows downward.
type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

// Pt is shorthand for building a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Direction is the horizontal heading of a message arrow.
type Direction int

const (
	Right Direction = iota
	Left
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Arrow is a directed, labelled message between two lanes.
type Arrow struct {
	From   Point  `json:"from" yaml:"from" toml:"from"`
	To     Point  `json:"to" yaml:"to" toml:"to"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Dashed bool   `json:"dashed,omitempty" yaml:"dashed,omitempty" toml:"dashed,omitempty"`
}

// Heading reports which way the arrowhead points. A vertical arrow points right.
func (a Arrow) Heading() Direction {
	if a.From.X > a.To.X {
		return Left
	}
	return Right
}

// Dot is a filled marker with a label, used for events local to one lane.
type Dot struct {
	At    Point  `json:"at" yaml:"at" toml:"at"`
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
}
