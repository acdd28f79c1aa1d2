package geometry

import (
	"math"
	"testing"

	"fedsd/core"
)

func TestLabelRotation(t *testing.T) {
	tests := []struct {
		name     string
		from, to core.Point
		want     float64
	}{
		{"rightward down", core.Pt(0, 0), core.Pt(100, 50), 26},
		{"leftward down", core.Pt(100, 0), core.Pt(0, 50), -27},
		{"vertical down", core.Pt(50, 0), core.Pt(50, 100), 90},
		{"vertical up", core.Pt(50, 100), core.Pt(50, 0), 90},
		{"horizontal right", core.Pt(0, 10), core.Pt(100, 10), 0},
		{"horizontal left", core.Pt(100, 10), core.Pt(0, 10), 0},
		{"coincident", core.Pt(5, 5), core.Pt(5, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LabelRotation(tt.from, tt.to)
			if got != tt.want {
				t.Errorf("LabelRotation(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if math.Signbit(got) && got == 0 {
				t.Errorf("LabelRotation(%v, %v) returned negative zero", tt.from, tt.to)
			}
		})
	}
}

func TestCeilMidpoint(t *testing.T) {
	tests := []struct {
		from, to core.Point
		want     core.Point
	}{
		{core.Pt(0, 0), core.Pt(100, 50), core.Pt(50, 25)},
		{core.Pt(0, 0), core.Pt(101, 51), core.Pt(51, 26)},
		{core.Pt(-3, -3), core.Pt(0, 0), core.Pt(-1, -1)},
	}

	for _, tt := range tests {
		if got := CeilMidpoint(tt.from, tt.to); got != tt.want {
			t.Errorf("CeilMidpoint(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDegreesUsesLabelPi(t *testing.T) {
	if got := Degrees(3.14); math.Abs(got-180) > 1e-9 {
		t.Errorf("Degrees(3.14) = %v, want 180", got)
	}
	// math.Pi overshoots a half turn slightly under labelPi.
	if got := Degrees(math.Pi); got <= 180 {
		t.Errorf("Degrees(math.Pi) = %v, want > 180", got)
	}
}
