// Package oaserrors provides structured error types for the oasdesc module.
//
// Import path: github.com/erraggy/oasdesc/oaserrors
//
// Building a description deliberately has very few failure paths: unknown
// field shapes degrade to a generic object schema and mismatched path
// parameter descriptions degrade to absent descriptions. The conditions that
// do surface as errors are all caller mistakes, and every one of them is a
// [ConfigError].
//
// # Sentinel Errors
//
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrUnsupportedBodySpec]: a body spec that is neither a media type nor a record
//   - [ErrUnsupportedStatusCode]: a responses key outside "100".."599" and "default"
//   - [ErrUnsupportedMethod]: an HTTP method without a path item slot
//   - [ErrUnsupportedFormat]: an emission format other than JSON or YAML
//
// # Usage Examples
//
//	op, err := desc.Operation(builder.WithResponses(map[string]*oas.Response{"700": resp}))
//	if errors.Is(err, oaserrors.ErrUnsupportedStatusCode) {
//	    // Fix the status key
//	}
//
// Extract error details with errors.As():
//
//	var cfgErr *oaserrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("bad %s: %v\n", cfgErr.Option, cfgErr.Value)
//	}
package oaserrors
