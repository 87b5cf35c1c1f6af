package builder

import (
	"github.com/erraggy/oasdesc/oas"
	"github.com/erraggy/oasdesc/shape"
)

// Fragment maps a shape to a schema fragment. Records are registered as
// components and returned as references; every other shape is mapped inline.
// Unrecognized shapes become a generic object, never an error.
func (r *Registry) Fragment(s *shape.Shape) *oas.Schema {
	u, elem := shape.Resolve(s)

	switch u.Kind {
	case shape.Record:
		return &oas.Schema{Ref: SchemaRef(r.register(u))}
	case shape.Integer, shape.Float, shape.Complex:
		return &oas.Schema{Type: oas.TypeNumber}
	case shape.Bool:
		return &oas.Schema{Type: oas.TypeBoolean}
	case shape.String:
		return &oas.Schema{Type: oas.TypeString}
	case shape.Sequence:
		return &oas.Schema{Type: oas.TypeArray, Items: r.Fragment(elem)}
	case shape.Null:
		return &oas.Schema{Type: oas.TypeNull}
	default:
		return &oas.Schema{Type: oas.TypeObject}
	}
}

// FragmentOf maps the shape of a Go value, reflect.Type or *shape.Shape.
func (r *Registry) FragmentOf(v any) *oas.Schema {
	return r.Fragment(shape.Of(v))
}
