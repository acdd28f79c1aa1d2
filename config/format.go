// Package config loads fedsd configuration and the structured files the CLI
// reads. JSON, YAML and TOML are accepted; the format follows the file
// extension unless given explicitly.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a structured file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat converts a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// FormatFromPath detects the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Decode strictly decodes data into v. Keys that do not map to a field of v
// are errors.
func Decode(data []byte, format Format, v any) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decoding yaml: %w", err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), v)
		if err != nil {
			return fmt.Errorf("decoding toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return fmt.Errorf("decoding toml: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// DecodeFile reads path and decodes it in the format given by its extension.
func DecodeFile(path string, v any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := Decode(data, format, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
