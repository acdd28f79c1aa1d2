package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"fedsd/config"
	"fedsd/events"
	"fedsd/scene"
)

// JSONExporter exports scenes to JSON format
type JSONExporter struct {
	events *events.Table
}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter(cfg config.Config) *JSONExporter {
	return &JSONExporter{events: cfg.Events}
}

// Export converts a scene to JSON with every arrow labelled
func (e *JSONExporter) Export(s *scene.Scene) (string, error) {
	if s == nil {
		return "", fmt.Errorf("scene is nil")
	}
	resolved, _ := s.Resolve(e.events)
	data, err := json.MarshalIndent(resolved, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for JSON
func (e *JSONExporter) GetFileExtension() string {
	return ".json"
}

// GetFormatName returns the format name
func (e *JSONExporter) GetFormatName() string {
	return "JSON"
}

// YAMLExporter exports scenes to YAML format
type YAMLExporter struct {
	events *events.Table
}

// NewYAMLExporter creates a new YAML exporter
func NewYAMLExporter(cfg config.Config) *YAMLExporter {
	return &YAMLExporter{events: cfg.Events}
}

// Export converts a scene to YAML with every arrow labelled
func (e *YAMLExporter) Export(s *scene.Scene) (string, error) {
	if s == nil {
		return "", fmt.Errorf("scene is nil")
	}
	resolved, _ := s.Resolve(e.events)
	data, err := yaml.Marshal(resolved)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetFileExtension returns the file extension for YAML
func (e *YAMLExporter) GetFileExtension() string {
	return ".yaml"
}

// GetFormatName returns the format name
func (e *YAMLExporter) GetFormatName() string {
	return "YAML"
}
