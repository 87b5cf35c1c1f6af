package builder

import (
	"sort"

	"github.com/erraggy/oasdesc/oas"
)

// operationConfig holds the configuration for building an operation.
type operationConfig struct {
	operationID   string
	summary       string
	description   string
	tags          []string
	deprecated    *bool
	security      []oas.SecurityRequirement
	cookieParams  []ParamSpec
	headerParams  []ParamSpec
	queryParams   []ParamSpec
	requestBody   any
	responses     map[string]*oas.Response
	responseOrder []string
}

// OperationOption configures an operation.
type OperationOption func(*operationConfig)

// WithOperationID sets the operation ID.
func WithOperationID(id string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.operationID = id
	}
}

// WithSummary sets the operation summary.
func WithSummary(summary string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.summary = summary
	}
}

// WithDescription sets the operation description.
func WithDescription(desc string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.description = desc
	}
}

// WithTags sets the operation tags.
func WithTags(tags ...string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.tags = tags
	}
}

// WithDeprecated sets the deprecated flag.
func WithDeprecated(deprecated bool) OperationOption {
	return func(cfg *operationConfig) {
		cfg.deprecated = oas.Bool(deprecated)
	}
}

// WithSecurity sets the security requirements for the operation.
func WithSecurity(requirements ...oas.SecurityRequirement) OperationOption {
	return func(cfg *operationConfig) {
		cfg.security = requirements
	}
}

// WithCookieParams appends cookie parameters.
func WithCookieParams(params ...ParamSpec) OperationOption {
	return func(cfg *operationConfig) {
		cfg.cookieParams = append(cfg.cookieParams, params...)
	}
}

// WithHeaderParams appends header parameters.
func WithHeaderParams(params ...ParamSpec) OperationOption {
	return func(cfg *operationConfig) {
		cfg.headerParams = append(cfg.headerParams, params...)
	}
}

// WithQueryParams appends query parameters.
func WithQueryParams(params ...ParamSpec) OperationOption {
	return func(cfg *operationConfig) {
		cfg.queryParams = append(cfg.queryParams, params...)
	}
}

// WithRequestBody sets the request body spec: either a media type string,
// or a record (struct value, reflect.Type or *shape.Shape) sent as JSON.
//
// Example:
//
//	builder.WithRequestBody(Comment{})   // application/json, $ref Comment
//	builder.WithRequestBody("image/*")   // raw media type, no schema
func WithRequestBody(spec any) OperationOption {
	return func(cfg *operationConfig) {
		cfg.requestBody = spec
	}
}

// WithResponses adds every entry of responses, keyed by status code string.
// Keys are applied in sorted order. An empty map still yields an empty
// responses object.
func WithResponses(responses map[string]*oas.Response) OperationOption {
	return func(cfg *operationConfig) {
		if cfg.responses == nil {
			cfg.responses = make(map[string]*oas.Response, len(responses))
		}
		codes := make([]string, 0, len(responses))
		for code := range responses {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			cfg.addResponse(code, responses[code])
		}
	}
}

// WithResponse adds one response under a status code string ("200", "default").
func WithResponse(code string, resp *oas.Response) OperationOption {
	return func(cfg *operationConfig) {
		cfg.addResponse(code, resp)
	}
}

func (cfg *operationConfig) addResponse(code string, resp *oas.Response) {
	if cfg.responses == nil {
		cfg.responses = make(map[string]*oas.Response)
	}
	if _, exists := cfg.responses[code]; !exists {
		cfg.responseOrder = append(cfg.responseOrder, code)
	}
	cfg.responses[code] = resp
}

// Operation builds an Operation. The result is not attached anywhere: assign
// it to a PathItem method field or pass it to AddOperation.
//
// Parameters are ordered cookie, header, query. A record request body is
// registered as a component and described by its name. Every invalid body
// spec or status key is reported in the returned BuilderErrors, in which case
// the operation is nil.
func (d *Description) Operation(opts ...OperationOption) (*oas.Operation, error) {
	cfg := &operationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var errs BuilderErrors
	op := &oas.Operation{
		Tags:        cfg.tags,
		Summary:     cfg.summary,
		Description: cfg.description,
		OperationID: cfg.operationID,
		Deprecated:  cfg.deprecated,
		Security:    cfg.security,
	}

	params := make([]*oas.Parameter, 0, len(cfg.cookieParams)+len(cfg.headerParams)+len(cfg.queryParams))
	params = append(params, toParameters(oas.ParamInCookie, cfg.cookieParams)...)
	params = append(params, toParameters(oas.ParamInHeader, cfg.headerParams)...)
	params = append(params, toParameters(oas.ParamInQuery, cfg.queryParams)...)
	if len(params) > 0 {
		op.Parameters = params
	}

	if cfg.requestBody != nil {
		body, err := d.registry.resolveBody("requestBody", cfg.requestBody)
		if err != nil {
			errs = append(errs, &BuilderError{
				Component: ComponentRequestBody,
				Field:     "requestBody",
				Cause:     err,
			})
		} else {
			op.RequestBody = &oas.RequestBody{
				Description: body.record,
				Content:     body.content,
			}
		}
	}

	if cfg.responses != nil {
		op.Responses = make(oas.Responses, len(cfg.responses))
		for _, code := range cfg.responseOrder {
			if err := op.Responses.Set(code, cfg.responses[code]); err != nil {
				errs = append(errs, &BuilderError{
					Component: ComponentResponse,
					Field:     code,
					Cause:     err,
				})
			}
		}
	}

	if len(errs) > 0 {
		for _, e := range errs {
			d.logger.Warn("operation option rejected", "operationId", cfg.operationID, "error", e.Error())
		}
		return nil, errs
	}

	d.logger.Debug("built operation",
		"operationId", cfg.operationID,
		"parameters", len(op.Parameters),
		"responses", len(op.Responses),
	)
	return op, nil
}
