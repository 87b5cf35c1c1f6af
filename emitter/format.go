package emitter

import (
	"path/filepath"
	"strings"

	"github.com/erraggy/oasdesc/oaserrors"
)

// Format is an output serialization format.
type Format string

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is block-style YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. "yml" is accepted as an alias of "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", oaserrors.NewUnsupportedFormat(s)
}

// FormatFromPath infers the format from a file extension. Unknown or missing
// extensions yield FormatYAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}
