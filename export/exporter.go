// Package export turns a laid-out scene into an output document.
package export

import (
	"fmt"

	"fedsd/config"
	"fedsd/scene"
)

// Format represents an export format
type Format string

const (
	// FormatSVG renders the scene as an SVG document
	FormatSVG Format = "svg"
	// FormatJSON writes the scene with resolved labels as JSON
	FormatJSON Format = "json"
	// FormatYAML writes the scene with resolved labels as YAML
	FormatYAML Format = "yaml"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a scene to the target format
	Export(s *scene.Scene) (string, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format. Labels are
// resolved through cfg.Events and SVG output is drawn with cfg.Style.
func NewExporter(format Format, cfg config.Config) (Exporter, error) {
	switch format {
	case FormatSVG:
		return NewSVGExporter(cfg), nil
	case FormatJSON:
		return NewJSONExporter(cfg), nil
	case FormatYAML:
		return NewYAMLExporter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatSVG,
		FormatJSON,
		FormatYAML,
	}
}

// GetFormatDescriptions returns human-readable descriptions of all formats
func GetFormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatSVG:  "SVG document (fedsd native format)",
		FormatJSON: "Scene with resolved labels as JSON",
		FormatYAML: "Scene with resolved labels as YAML",
	}
}
