package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fedsd/svg"
)

func TestDefaultStyleIsValid(t *testing.T) {
	assert.NoError(t, svg.DefaultStyle().Validate())
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*svg.Style)
		wantErr string
	}{
		{"hex stroke", func(s *svg.Style) { s.Stroke = "#ff8800" }, ""},
		{"named head fill", func(s *svg.Style) { s.HeadFill = "darkgreen" }, ""},
		{"none fill", func(s *svg.Style) { s.DotFill = "none" }, ""},
		{"unknown stroke", func(s *svg.Style) { s.Stroke = "blurple" }, "stroke: unknown color"},
		{"empty dot stroke", func(s *svg.Style) { s.DotStroke = "" }, "dot_stroke"},
		{"zero width", func(s *svg.Style) { s.StrokeWidth = 0 }, "stroke_width: must be positive"},
		{"negative radius", func(s *svg.Style) { s.DotRadius = -1 }, "dot_radius"},
		{"no dash", func(s *svg.Style) { s.DashArray = " " }, "dash_array"},
		{"no font size", func(s *svg.Style) { s.FontSize = "" }, "font_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := svg.DefaultStyle()
			tt.mutate(&style)
			err := style.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIsColor(t *testing.T) {
	for _, c := range []string{"black", "Blue", "#000000", "none"} {
		assert.True(t, svg.IsColor(c), c)
	}
	for _, c := range []string{"", "#12", "not-a-color"} {
		assert.False(t, svg.IsColor(c), c)
	}
}
