package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates an invalid configuration or builder argument.
	ErrConfig = errors.New("configuration error")

	// ErrUnsupportedBodySpec indicates a request or response body spec that is
	// neither a media type string nor a record type.
	ErrUnsupportedBodySpec = errors.New("unsupported body specification")

	// ErrUnsupportedStatusCode indicates a responses key outside "100".."599" and "default".
	ErrUnsupportedStatusCode = errors.New("unsupported status code")

	// ErrUnsupportedMethod indicates an HTTP method that has no path item slot.
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")

	// ErrUnsupportedFormat indicates an unknown emission format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ConfigError represents an invalid argument supplied by the caller.
type ConfigError struct {
	// Option is the name of the problematic option or argument
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Reason is the sentinel classifying the error (e.g. ErrUnsupportedStatusCode)
	Reason error
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Reason != nil {
		msg = e.Reason.Error()
	}
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Every ConfigError matches ErrConfig; it also matches its Reason sentinel.
func (e *ConfigError) Is(target error) bool {
	if target == ErrConfig {
		return true
	}
	return e.Reason != nil && target == e.Reason
}

// NewUnsupportedStatusCode reports a responses key with no destination slot.
func NewUnsupportedStatusCode(code string) *ConfigError {
	return &ConfigError{
		Option:  "responses",
		Value:   code,
		Message: `status code must be "100".."599" or "default"`,
		Reason:  ErrUnsupportedStatusCode,
	}
}

// NewUnsupportedBodySpec reports a body spec of an unusable type.
func NewUnsupportedBodySpec(option string, spec any) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   fmt.Sprintf("%T", spec),
		Message: "expected a media type string or a record type",
		Reason:  ErrUnsupportedBodySpec,
	}
}

// NewUnsupportedMethod reports an HTTP method that has no path item slot.
func NewUnsupportedMethod(method string) *ConfigError {
	return &ConfigError{
		Option: "method",
		Value:  method,
		Reason: ErrUnsupportedMethod,
	}
}

// NewUnsupportedFormat reports an unknown emission format.
func NewUnsupportedFormat(format string) *ConfigError {
	return &ConfigError{
		Option:  "format",
		Value:   format,
		Message: "valid formats: json, yaml",
		Reason:  ErrUnsupportedFormat,
	}
}
