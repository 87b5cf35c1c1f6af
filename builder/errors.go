package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasdesc/oaserrors"
)

// ComponentType identifies the part of the document where an error occurred.
type ComponentType string

const (
	// ComponentOperation indicates an error attaching or building an operation.
	ComponentOperation ComponentType = "operation"
	// ComponentRequestBody indicates an error in a request body spec.
	ComponentRequestBody ComponentType = "request_body"
	// ComponentResponse indicates an error in a response or responses map.
	ComponentResponse ComponentType = "response"
	// ComponentSchema indicates an error registering a schema component.
	ComponentSchema ComponentType = "schema"
)

// BuilderError is a structured error from the builder package.
type BuilderError struct {
	// Component is the type of component where the error occurred.
	Component ComponentType
	// Method is the HTTP method, when known.
	Method string
	// Path is the path template, when known.
	Path string
	// Field names the offending argument (e.g. a status key).
	Field string
	// Message describes the error.
	Message string
	// Context provides additional details.
	Context map[string]any
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}

	if e.Method != "" && e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Method)
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	} else if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}

	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// All BuilderErrors are classified as oaserrors.ErrConfig.
func (e *BuilderError) Is(target error) bool {
	return target == oaserrors.ErrConfig
}

// Location returns a descriptive location string.
func (e *BuilderError) Location() string {
	if e.Method != "" && e.Path != "" {
		return fmt.Sprintf("%s %s", e.Method, e.Path)
	}
	if e.Path != "" {
		return e.Path
	}
	if e.Component != "" {
		return string(e.Component)
	}
	return "unknown"
}

// BuilderErrors is a collection of BuilderError with formatting support.
type BuilderErrors []*BuilderError

// Error implements the error interface with a multi-line message.
func (errs BuilderErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		if errs[0] == nil {
			return ""
		}
		return errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "builder: %d error(s):\n", len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		sb.WriteString("  - ")
		sb.WriteString(strings.TrimPrefix(e.Error(), "builder: "))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors for errors.Is and errors.As.
func (errs BuilderErrors) Unwrap() []error {
	result := make([]error, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		result = append(result, e)
	}
	return result
}
