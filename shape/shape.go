package shape

import (
	"reflect"
	"sync"
)

// Kind enumerates the shape variants.
type Kind int

const (
	// Unknown is an opaque or unsupported type.
	Unknown Kind = iota
	Null
	Bool
	Integer
	Float
	Complex
	String
	// Sequence is a homogeneous list; Args[0] is the element.
	Sequence
	// Mapping is a keyed collection; Args[0] is the key, Args[1] the value.
	Mapping
	// Union lists alternatives in declaration order.
	Union
	// Record is a named type with declared fields.
	Record
)

var kindNames = [...]string{
	Unknown:  "unknown",
	Null:     "null",
	Bool:     "boolean",
	Integer:  "integer",
	Float:    "float",
	Complex:  "complex",
	String:   "string",
	Sequence: "sequence",
	Mapping:  "mapping",
	Union:    "union",
	Record:   "record",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Shape describes the declared type of a value.
type Shape struct {
	Kind Kind
	// Name is the declared type name. Records are registered under it.
	Name string
	// Args holds type arguments: the element for sequences, key and value
	// for mappings, the alternatives for unions.
	Args []*Shape

	fields func() []Field
}

// Fields returns the record's fields in declaration order.
// It returns nil for anything but a record.
func (s *Shape) Fields() []Field {
	if s == nil || s.fields == nil {
		return nil
	}
	return s.fields()
}

// IsOptional reports whether the shape is a union that admits null.
// Only the outermost layer counts: a sequence of optional values is not optional.
func (s *Shape) IsOptional() bool {
	if s == nil || s.Kind != Union {
		return false
	}
	for _, alt := range s.Args {
		if alt != nil && alt.Kind == Null {
			return true
		}
	}
	return false
}

// IsConcrete reports whether the shape names an actual type, i.e. it is
// neither null nor unknown.
func (s *Shape) IsConcrete() bool {
	return s != nil && s.Kind != Null && s.Kind != Unknown
}

// Field is one declared field of a record.
type Field struct {
	Name    string
	Shape   *Shape
	Default DefaultValue
}

// DefaultValue is a field's declared default: absent, a literal, or a factory.
type DefaultValue struct {
	present bool
	literal any
	factory func() any
}

// NoDefault is the absent default.
var NoDefault = DefaultValue{}

// DefaultLiteral declares a literal default. DefaultLiteral(nil) is an
// explicit null default.
func DefaultLiteral(v any) DefaultValue {
	return DefaultValue{present: true, literal: v}
}

// DefaultFactory declares a default produced by calling fn.
func DefaultFactory(fn func() any) DefaultValue {
	return DefaultValue{present: fn != nil, factory: fn}
}

// Present reports whether a default was declared at all.
func (d DefaultValue) Present() bool {
	return d.present
}

// Value evaluates the default. A factory is called on every invocation.
func (d DefaultValue) Value() any {
	if d.factory != nil {
		return d.factory()
	}
	return d.literal
}

// NonNull reports whether a default was declared and evaluates to a non-nil
// value. A typed nil (a nil pointer, map, slice or the like) counts as null.
func (d DefaultValue) NonNull() bool {
	if !d.present {
		return false
	}
	return !isNil(d.Value())
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// NullShape returns the null shape.
func NullShape() *Shape { return &Shape{Kind: Null} }

// BoolShape returns the boolean shape.
func BoolShape() *Shape { return &Shape{Kind: Bool} }

// IntegerShape returns the integer shape.
func IntegerShape() *Shape { return &Shape{Kind: Integer} }

// FloatShape returns the float shape.
func FloatShape() *Shape { return &Shape{Kind: Float} }

// ComplexShape returns the complex shape.
func ComplexShape() *Shape { return &Shape{Kind: Complex} }

// StringShape returns the string shape.
func StringShape() *Shape { return &Shape{Kind: String} }

// UnknownShape returns the opaque shape.
func UnknownShape() *Shape { return &Shape{Kind: Unknown} }

// SequenceOf returns a sequence of elem.
func SequenceOf(elem *Shape) *Shape {
	return &Shape{Kind: Sequence, Args: []*Shape{elem}}
}

// MappingOf returns a mapping from key to value.
func MappingOf(key, value *Shape) *Shape {
	return &Shape{Kind: Mapping, Args: []*Shape{key, value}}
}

// UnionOf returns a union of the alternatives, in the given order.
func UnionOf(alts ...*Shape) *Shape {
	return &Shape{Kind: Union, Args: alts}
}

// Optional returns a union of s and null.
func Optional(s *Shape) *Shape {
	return UnionOf(s, NullShape())
}

// RecordOf returns a record named name. The fields function is called at most
// once, on first use, so a record may refer to itself through its fields.
func RecordOf(name string, fields func() []Field) *Shape {
	if fields == nil {
		fields = func() []Field { return nil }
	}
	return &Shape{Kind: Record, Name: name, fields: sync.OnceValue(fields)}
}
