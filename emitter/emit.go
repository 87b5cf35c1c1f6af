package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/erraggy/oasdesc/internal/fileutil"
	"github.com/erraggy/oasdesc/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Strip returns v as generic values (map[string]any, []any, string, bool,
// int64, float64, nil) with every null-valued key removed at every depth.
func Strip(v any) (any, error) {
	node, err := Tree(v)
	if err != nil {
		return nil, err
	}
	return toValue(node), nil
}

// Emit serializes v in the given format after stripping null values.
// JSON is indented with two spaces.
func Emit(v any, f Format) ([]byte, error) {
	node, err := Tree(v)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatJSON:
		var compact bytes.Buffer
		if err := writeJSON(&compact, node); err != nil {
			return nil, err
		}
		var out bytes.Buffer
		if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
			return nil, fmt.Errorf("emitter: failed to indent JSON: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	case FormatYAML:
		data, err := yaml.Marshal(node)
		if err != nil {
			return nil, fmt.Errorf("emitter: failed to encode YAML: %w", err)
		}
		return data, nil
	}
	return nil, oaserrors.NewUnsupportedFormat(string(f))
}

// JSON is shorthand for Emit(v, FormatJSON).
func JSON(v any) ([]byte, error) {
	return Emit(v, FormatJSON)
}

// YAML is shorthand for Emit(v, FormatYAML).
func YAML(v any) ([]byte, error) {
	return Emit(v, FormatYAML)
}

// WriteFile emits v to path in the format implied by the file extension.
// The file is created with mode 0600.
func WriteFile(v any, path string) error {
	data, err := Emit(v, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := fileutil.WriteOwnerOnly(path, data); err != nil {
		return fmt.Errorf("emitter: %w", err)
	}
	return nil
}
