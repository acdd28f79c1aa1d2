package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedsd/events"
	"fedsd/svg"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "fedsd.yaml", `
style:
  stroke: "#224466"
  stroke_width: 3
  dot_label_fill: red
event_names:
  "RTI sends ADDRESS_AD to federate": ADR_AD
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	want := svg.DefaultStyle()
	want.Stroke = "#224466"
	want.StrokeWidth = 3
	want.DotLabelFill = "red"
	assert.Equal(t, want, cfg.Style)

	assert.Equal(t, "ADR_AD", cfg.Events.Canonicalize("RTI sends ADDRESS_AD to federate"))
	assert.Equal(t, "NET", cfg.Events.Canonicalize("Federate sends NET to RTI"))
	assert.Equal(t, events.Default().Len()+1, cfg.Events.Len())
}

func TestLoadTOMLReplacesEventNames(t *testing.T) {
	path := writeFile(t, "fedsd.toml", `
replace_event_names = true

[style]
dash_array = "4,4"
stroke_width = 1.5

[event_names]
"Node publishes HEARTBEAT" = "HB"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "4,4", cfg.Style.DashArray)
	assert.Equal(t, 1.5, cfg.Style.StrokeWidth)
	assert.Equal(t, "black", cfg.Style.Stroke)
	assert.Equal(t, 1, cfg.Events.Len())
	assert.Equal(t, "HB", cfg.Events.Canonicalize("Node publishes HEARTBEAT"))
	assert.Equal(t, events.Unidentified, cfg.Events.Canonicalize("Federate sends NET to RTI"))
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "fedsd.json", `{"style": {"font_size": "10px", "head_fill": "black"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10px", cfg.Style.FontSize)
	assert.Equal(t, "black", cfg.Style.HeadFill)
	assert.Same(t, events.Default(), cfg.Events)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown yaml key", "c.yaml", "colour: red\n", "field colour not found"},
		{"unknown toml key", "c.toml", "[style]\nwidth = 2.0\n", "unknown keys style.width"},
		{"unknown json key", "c.json", `{"styles": {}}`, "unknown field"},
		{"bad color", "c.yaml", "style:\n  stroke: octarine\n", "stroke: unknown color"},
		{"bad width", "c.yaml", "style:\n  dot_radius: 0\n", "dot_radius: must be positive"},
		{"replace without names", "c.yaml", "replace_event_names: true\n", "event_names is empty"},
		{"empty tag", "c.yaml", "event_names:\n  \"X happens\": \"\"\n", "invalid event name mapping"},
		{"no extension", "config", "style: {}\n", "no file extension"},
		{"unsupported extension", "c.ini", "a=b\n", "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			cfg, err := Parse(nil, format)
			require.NoError(t, err)
			assert.Equal(t, Default().Style, cfg.Style)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{".json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"YML", FormatYAML, false},
		{".toml", FormatTOML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
