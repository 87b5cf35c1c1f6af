package builder

import (
	"reflect"

	"github.com/erraggy/oasdesc/oas"
	"github.com/erraggy/oasdesc/oaserrors"
	"github.com/erraggy/oasdesc/shape"
)

// resolvedBody is the content produced from a body spec.
type resolvedBody struct {
	content map[string]*oas.MediaType
	// record is the component name when the spec was a record, else "".
	record string
}

// resolveBody interprets a body spec.
//
// A string is a raw media type and yields an empty MediaType under that key.
// A struct value, reflect.Type or *shape.Shape that resolves to a record is
// registered and yields "application/json" with a reference. Anything else
// fails with oaserrors.ErrUnsupportedBodySpec.
func (r *Registry) resolveBody(option string, spec any) (*resolvedBody, error) {
	if mediaType, ok := spec.(string); ok {
		return &resolvedBody{
			content: map[string]*oas.MediaType{mediaType: {}},
		}, nil
	}

	s, ok := bodyShape(spec)
	if !ok {
		return nil, oaserrors.NewUnsupportedBodySpec(option, spec)
	}
	u, _ := shape.Resolve(s)
	if u.Kind != shape.Record {
		return nil, oaserrors.NewUnsupportedBodySpec(option, spec)
	}

	name := r.register(u)
	return &resolvedBody{
		content: map[string]*oas.MediaType{
			oas.MediaTypeJSON: {Schema: &oas.Schema{Ref: SchemaRef(name)}},
		},
		record: name,
	}, nil
}

// bodyShape returns the shape of a non-string body spec. Only struct values,
// pointers to structs, reflect.Types and shapes are considered.
func bodyShape(spec any) (*shape.Shape, bool) {
	switch v := spec.(type) {
	case nil:
		return nil, false
	case *shape.Shape:
		return v, v != nil
	case reflect.Type:
		return shape.OfType(v), true
	}

	t := reflect.TypeOf(spec)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	return shape.Of(spec), true
}
