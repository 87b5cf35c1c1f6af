package builder

import (
	"strings"

	"github.com/erraggy/oasdesc/oas"
	"github.com/erraggy/oasdesc/oaserrors"
	"github.com/erraggy/oasdesc/shape"
)

// SchemaRefPrefix is the JSON pointer prefix of schema component references.
const SchemaRefPrefix = "#/components/schemas/"

// anonymousRecordName is used for records declared without a name.
const anonymousRecordName = "AnonymousType"

// SchemaRef returns the reference string for a named schema component.
func SchemaRef(name string) string {
	return SchemaRefPrefix + name
}

// Registry holds the record types already converted into schema components.
//
// Components are keyed by the record's declared name. The first registration
// of a name wins; later ones return the existing reference without inspecting
// the record again. Two distinct records sharing a name therefore collide.
//
// Concurrency: a Registry is not safe for concurrent use.
type Registry struct {
	schemas map[string]*oas.Schema
	order   []string
	doc     *oas.Document
	logger  Logger
}

// NewRegistry creates a standalone registry. A nil logger discards output.
func NewRegistry(logger Logger) *Registry {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Registry{logger: logger}
}

// newDocumentRegistry creates a registry whose schemas map is installed into
// doc.Components on first use.
func newDocumentRegistry(doc *oas.Document, logger Logger) *Registry {
	r := NewRegistry(logger)
	r.doc = doc
	return r
}

// slots returns the schemas map, creating and attaching it on first use.
func (r *Registry) slots() map[string]*oas.Schema {
	if r.schemas == nil {
		r.schemas = make(map[string]*oas.Schema)
	}
	if r.doc != nil {
		if r.doc.Components == nil {
			r.doc.Components = &oas.Components{}
		}
		if r.doc.Components.Schemas == nil {
			r.doc.Components.Schemas = r.schemas
		}
	}
	return r.schemas
}

// Register converts a record shape into a schema component and returns its
// reference. Optional and union wrappers are resolved first, so a pointer to
// a struct is accepted. Anything that does not resolve to a record fails with
// a *BuilderError for ComponentSchema wrapping oaserrors.ErrUnsupportedBodySpec.
func (r *Registry) Register(s *shape.Shape) (string, error) {
	u, _ := shape.Resolve(s)
	if u.Kind != shape.Record {
		kind := u.Kind.String()
		return "", &BuilderError{
			Component: ComponentSchema,
			Message:   "only record shapes can be registered as components",
			Context:   map[string]any{"kind": kind},
			Cause: &oaserrors.ConfigError{
				Option: "record",
				Value:  kind,
				Reason: oaserrors.ErrUnsupportedBodySpec,
			},
		}
	}
	return SchemaRef(r.register(u)), nil
}

// RegisterType registers the shape of a Go value, reflect.Type or *shape.Shape.
func (r *Registry) RegisterType(v any) (string, error) {
	return r.Register(shape.Of(v))
}

// register adds record under its name and returns that name.
// The slot is stored before the fields are walked, so a record that refers to
// itself sees the slot and gets a reference instead of recursing.
func (r *Registry) register(record *shape.Shape) string {
	name := record.Name
	if name == "" {
		name = anonymousRecordName
	}

	schemas := r.slots()
	if _, exists := schemas[name]; exists {
		r.logger.Debug("schema component already registered", "name", name)
		return name
	}

	schema := &oas.Schema{}
	schemas[name] = schema
	r.order = append(r.order, name)

	fields := record.Fields()
	required := make([]string, 0, len(fields))
	properties := make(map[string]*oas.Schema, len(fields))
	for _, f := range fields {
		if fieldRequired(f) {
			required = append(required, f.Name)
		}
		properties[f.Name] = r.Fragment(f.Shape)
	}

	schema.Required = required
	schema.Properties = properties
	schema.Type = oas.TypeObject

	r.logger.Debug("registered schema component",
		"name", name,
		"properties", len(properties),
		"required", len(required),
	)
	return name
}

// fieldRequired reports whether a field is listed as required: its shape is
// not optional, or it is optional but has a non-null default.
func fieldRequired(f shape.Field) bool {
	return !f.Shape.IsOptional() || f.Default.NonNull()
}

// Schema returns the component registered under name.
func (r *Registry) Schema(name string) (*oas.Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Schemas returns the live component map. It is nil until the first registration.
func (r *Registry) Schemas() map[string]*oas.Schema {
	return r.schemas
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	return len(r.schemas)
}

// RefName extracts the component name from a schema reference, or "" when
// ref does not point into components.schemas.
func RefName(ref string) string {
	name, ok := strings.CutPrefix(ref, SchemaRefPrefix)
	if !ok {
		return ""
	}
	return name
}
