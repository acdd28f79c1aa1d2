package svg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Style holds the presentation attributes written into fragments.
// DefaultStyle reproduces the historical fedsd output byte for byte.
type Style struct {
	Stroke         string  `json:"stroke" yaml:"stroke" toml:"stroke"`
	StrokeWidth    float64 `json:"stroke_width" yaml:"stroke_width" toml:"stroke_width"`
	DashArray      string  `json:"dash_array" yaml:"dash_array" toml:"dash_array"`
	HeadFill       string  `json:"head_fill,omitempty" yaml:"head_fill,omitempty" toml:"head_fill,omitempty"`
	FontSize       string  `json:"font_size" yaml:"font_size" toml:"font_size"`
	DotRadius      float64 `json:"dot_radius" yaml:"dot_radius" toml:"dot_radius"`
	DotStroke      string  `json:"dot_stroke" yaml:"dot_stroke" toml:"dot_stroke"`
	DotStrokeWidth float64 `json:"dot_stroke_width" yaml:"dot_stroke_width" toml:"dot_stroke_width"`
	DotFill        string  `json:"dot_fill" yaml:"dot_fill" toml:"dot_fill"`
	DotLabelFill   string  `json:"dot_label_fill" yaml:"dot_label_fill" toml:"dot_label_fill"`
}

// DefaultStyle returns black 2px message lines dashed 10,10, a black dot of
// radius 5 and blue dot labels.
func DefaultStyle() Style {
	return Style{
		Stroke:         "black",
		StrokeWidth:    2,
		DashArray:      "10,10",
		FontSize:       "smaller",
		DotRadius:      5,
		DotStroke:      "black",
		DotStrokeWidth: 1,
		DotFill:        "black",
		DotLabelFill:   "blue",
	}
}

// Validate reports every invalid attribute of the style.
func (s Style) Validate() error {
	var errs []error

	colors := []struct {
		field, value string
		optional     bool
	}{
		{"stroke", s.Stroke, false},
		{"head_fill", s.HeadFill, true},
		{"dot_stroke", s.DotStroke, false},
		{"dot_fill", s.DotFill, false},
		{"dot_label_fill", s.DotLabelFill, false},
	}
	for _, c := range colors {
		if c.value == "" && c.optional {
			continue
		}
		if !IsColor(c.value) {
			errs = append(errs, fmt.Errorf("%s: unknown color %q", c.field, c.value))
		}
	}

	sizes := []struct {
		field string
		value float64
	}{
		{"stroke_width", s.StrokeWidth},
		{"dot_radius", s.DotRadius},
		{"dot_stroke_width", s.DotStrokeWidth},
	}
	for _, sz := range sizes {
		if sz.value <= 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive, got %v", sz.field, sz.value))
		}
	}

	if strings.TrimSpace(s.DashArray) == "" {
		errs = append(errs, errors.New("dash_array: must not be empty"))
	}
	if strings.TrimSpace(s.FontSize) == "" {
		errs = append(errs, errors.New("font_size: must not be empty"))
	}

	return errors.Join(errs...)
}

// IsColor reports whether c is a named color, a #rrggbb value, or "none".
func IsColor(c string) bool {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return false
	}
	if c == "none" || c == "currentcolor" {
		return true
	}
	return tcell.GetColor(c) != tcell.ColorDefault
}
