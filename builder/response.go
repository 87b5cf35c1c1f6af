package builder

import (
	"github.com/erraggy/oasdesc/oas"
)

// responseConfig holds configuration for building a response.
type responseConfig struct {
	headers []ParamSpec
	body    any
}

// ResponseOption configures a response.
type ResponseOption func(*responseConfig)

// WithResponseHeaders appends response headers.
func WithResponseHeaders(headers ...ParamSpec) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.headers == nil {
			cfg.headers = make([]ParamSpec, 0, len(headers))
		}
		cfg.headers = append(cfg.headers, headers...)
	}
}

// WithResponseBody sets the response body spec. It accepts the same specs as
// WithRequestBody.
func WithResponseBody(spec any) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.body = spec
	}
}

// Response builds a Response with the given description. Headers map name to
// a Header carrying the spec's description and required flag. A record body
// is registered as a component; unlike request bodies, the record name is not
// copied into the description.
func (d *Description) Response(description string, opts ...ResponseOption) (*oas.Response, error) {
	cfg := &responseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	resp := &oas.Response{Description: description}
	if cfg.headers != nil {
		resp.Headers = toHeaders(cfg.headers)
	}

	if cfg.body != nil {
		body, err := d.registry.resolveBody("responseBody", cfg.body)
		if err != nil {
			d.logger.Warn("response option rejected", "description", description, "error", err.Error())
			return nil, BuilderErrors{{
				Component: ComponentResponse,
				Field:     "body",
				Cause:     err,
			}}
		}
		resp.Content = body.content
	}
	return resp, nil
}
