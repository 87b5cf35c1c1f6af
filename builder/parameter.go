package builder

import (
	"github.com/erraggy/oasdesc/oas"
)

// ParamSpec is a (name, description, required?) parameter tuple.
// A nil Required leaves the flag unset in the output.
type ParamSpec struct {
	Name        string
	Description string
	Required    *bool
}

// Param returns a ParamSpec with the required flag unset.
func Param(name, description string) ParamSpec {
	return ParamSpec{Name: name, Description: description}
}

// WithRequired returns a copy of p with the required flag set.
func (p ParamSpec) WithRequired(required bool) ParamSpec {
	p.Required = oas.Bool(required)
	return p
}

// toParameters converts specs to parameters located in "in", keeping order.
func toParameters(in string, specs []ParamSpec) []*oas.Parameter {
	params := make([]*oas.Parameter, 0, len(specs))
	for _, s := range specs {
		params = append(params, &oas.Parameter{
			Name:        s.Name,
			In:          in,
			Description: s.Description,
			Required:    s.Required,
		})
	}
	return params
}

// toHeaders converts specs to a response header map.
func toHeaders(specs []ParamSpec) map[string]*oas.Header {
	headers := make(map[string]*oas.Header, len(specs))
	for _, s := range specs {
		headers[s.Name] = &oas.Header{
			Description: s.Description,
			Required:    s.Required,
		}
	}
	return headers
}
