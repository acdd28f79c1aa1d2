package config

import (
	"fmt"
	"strings"

	"fedsd/events"
	"fedsd/svg"
)

// Config is the resolved renderer configuration.
type Config struct {
	Style  svg.Style
	Events *events.Table
}

// Default returns the stock style and the RTI/federate event table.
func Default() Config {
	return Config{
		Style:  svg.DefaultStyle(),
		Events: events.Default(),
	}
}

// fileConfig is the on-disk layout. Unset fields keep their defaults.
type fileConfig struct {
	Style             *fileStyle        `json:"style" yaml:"style" toml:"style"`
	EventNames        map[string]string `json:"event_names" yaml:"event_names" toml:"event_names"`
	ReplaceEventNames bool              `json:"replace_event_names" yaml:"replace_event_names" toml:"replace_event_names"`
}

type fileStyle struct {
	Stroke         *string  `json:"stroke" yaml:"stroke" toml:"stroke"`
	StrokeWidth    *float64 `json:"stroke_width" yaml:"stroke_width" toml:"stroke_width"`
	DashArray      *string  `json:"dash_array" yaml:"dash_array" toml:"dash_array"`
	HeadFill       *string  `json:"head_fill" yaml:"head_fill" toml:"head_fill"`
	FontSize       *string  `json:"font_size" yaml:"font_size" toml:"font_size"`
	DotRadius      *float64 `json:"dot_radius" yaml:"dot_radius" toml:"dot_radius"`
	DotStroke      *string  `json:"dot_stroke" yaml:"dot_stroke" toml:"dot_stroke"`
	DotStrokeWidth *float64 `json:"dot_stroke_width" yaml:"dot_stroke_width" toml:"dot_stroke_width"`
	DotFill        *string  `json:"dot_fill" yaml:"dot_fill" toml:"dot_fill"`
	DotLabelFill   *string  `json:"dot_label_fill" yaml:"dot_label_fill" toml:"dot_label_fill"`
}

// Load reads a configuration file and overlays it onto Default.
func Load(path string) (Config, error) {
	var raw fileConfig
	if err := DecodeFile(path, &raw); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return raw.resolve()
}

// Parse decodes configuration data and overlays it onto Default.
func Parse(data []byte, format Format) (Config, error) {
	var raw fileConfig
	if err := Decode(data, format, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return raw.resolve()
}

func (raw fileConfig) resolve() (Config, error) {
	cfg := Default()

	if s := raw.Style; s != nil {
		setString(&cfg.Style.Stroke, s.Stroke)
		setFloat(&cfg.Style.StrokeWidth, s.StrokeWidth)
		setString(&cfg.Style.DashArray, s.DashArray)
		setString(&cfg.Style.HeadFill, s.HeadFill)
		setString(&cfg.Style.FontSize, s.FontSize)
		setFloat(&cfg.Style.DotRadius, s.DotRadius)
		setString(&cfg.Style.DotStroke, s.DotStroke)
		setFloat(&cfg.Style.DotStrokeWidth, s.DotStrokeWidth)
		setString(&cfg.Style.DotFill, s.DotFill)
		setString(&cfg.Style.DotLabelFill, s.DotLabelFill)
	}
	if err := cfg.Style.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid style: %w", err)
	}

	for name, tag := range raw.EventNames {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(tag) == "" {
			return Config{}, fmt.Errorf("invalid event name mapping %q -> %q", name, tag)
		}
	}
	switch {
	case raw.ReplaceEventNames:
		if len(raw.EventNames) == 0 {
			return Config{}, fmt.Errorf("replace_event_names is set but event_names is empty")
		}
		cfg.Events = events.New(raw.EventNames)
	case len(raw.EventNames) > 0:
		cfg.Events = cfg.Events.Merge(raw.EventNames)
	}

	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
