package display

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/shuffledraw/internal/draw"
)

// Formats accepted by Encode besides plain text
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Encode writes the result in a machine-readable format
func Encode(w io.Writer, format string, result *draw.Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(result); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// Decode reads a result written by Encode
func Decode(r io.Reader, format string) (*draw.Result, error) {
	var result draw.Result
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&result); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return &result, nil
}

// FormatForPath guesses the format from a file extension
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("cannot tell the format of %s (expected .json, .yaml or .toml)", path)
	}
}
