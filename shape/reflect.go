package shape

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
	"time"
)

// Describer is implemented by types that supply their own shape descriptor
// instead of the one derived by reflection.
type Describer interface {
	DescribeShape() *Shape
}

var (
	describerType = reflect.TypeFor[Describer]()
	timeType      = reflect.TypeFor[time.Time]()
	rawJSONType   = reflect.TypeFor[json.RawMessage]()
)

// cache holds reflect.Type → *Shape. Records are stored before their fields
// are evaluated so self-referencing types resolve to the same record.
var cache sync.Map

// Of returns the shape of v's dynamic type. A nil v is null.
// If v is a reflect.Type, its shape is returned instead.
func Of(v any) *Shape {
	switch tv := v.(type) {
	case nil:
		return NullShape()
	case *Shape:
		return tv
	case reflect.Type:
		return OfType(tv)
	}
	return OfType(reflect.TypeOf(v))
}

// OfType returns the shape of t. A container type that refers back to
// itself (type Tree map[string]Tree) resolves to Unknown at the point of
// recursion.
func OfType(t reflect.Type) *Shape {
	return ofType(t, nil)
}

// ofType derives t, tracking the types being derived on the current path
// in inProgress.
func ofType(t reflect.Type, inProgress map[reflect.Type]bool) *Shape {
	if t == nil {
		return NullShape()
	}
	if cached, ok := cache.Load(t); ok {
		return cached.(*Shape)
	}
	if inProgress[t] {
		return &Shape{Kind: Unknown, Name: t.Name()}
	}
	if inProgress == nil {
		inProgress = make(map[reflect.Type]bool)
	}

	inProgress[t] = true
	s := deriveShape(t, inProgress)
	delete(inProgress, t)

	// A nested container may have been cut short by an enclosing cycle, so
	// only records and top-level results are cached.
	if s.Kind != Record && len(inProgress) > 0 {
		return s
	}
	actual, _ := cache.LoadOrStore(t, s)
	return actual.(*Shape)
}

func deriveShape(t reflect.Type, inProgress map[reflect.Type]bool) *Shape {
	if t.Kind() == reflect.Pointer {
		return Optional(ofType(t.Elem(), inProgress))
	}

	if s := describedShape(t); s != nil {
		return s
	}

	switch t {
	case timeType:
		return &Shape{Kind: String, Name: t.Name()}
	case rawJSONType:
		return &Shape{Kind: Unknown, Name: t.Name()}
	}

	switch t.Kind() {
	case reflect.Bool:
		return &Shape{Kind: Bool, Name: t.Name()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return &Shape{Kind: Integer, Name: t.Name()}
	case reflect.Float32, reflect.Float64:
		return &Shape{Kind: Float, Name: t.Name()}
	case reflect.Complex64, reflect.Complex128:
		return &Shape{Kind: Complex, Name: t.Name()}
	case reflect.String:
		return &Shape{Kind: String, Name: t.Name()}
	case reflect.Slice:
		// encoding/json writes []byte as a base64 string
		if t.Elem().Kind() == reflect.Uint8 {
			return &Shape{Kind: String, Name: t.Name()}
		}
		return &Shape{Kind: Sequence, Name: t.Name(), Args: []*Shape{ofType(t.Elem(), inProgress)}}
	case reflect.Array:
		return &Shape{Kind: Sequence, Name: t.Name(), Args: []*Shape{ofType(t.Elem(), inProgress)}}
	case reflect.Map:
		return &Shape{Kind: Mapping, Name: t.Name(), Args: []*Shape{ofType(t.Key(), inProgress), ofType(t.Elem(), inProgress)}}
	case reflect.Struct:
		return RecordOf(recordName(t), func() []Field { return structFields(t) })
	default:
		return &Shape{Kind: Unknown, Name: t.Name()}
	}
}

// describedShape returns the descriptor of a Describer type, or nil.
func describedShape(t reflect.Type) *Shape {
	if t.Kind() == reflect.Interface {
		return nil
	}
	var d Describer
	switch {
	case t.Implements(describerType):
		d = reflect.Zero(t).Interface().(Describer)
	case reflect.PointerTo(t).Implements(describerType):
		d = reflect.New(t).Interface().(Describer)
	default:
		return nil
	}
	return d.DescribeShape()
}

// structFields lists the JSON-visible fields of a struct in declaration order.
// Fields promoted from embedded structs are flattened; a shallower field
// shadows a deeper one with the same name.
func structFields(t reflect.Type) []Field {
	var (
		fields []Field
		depths []int
		index  = make(map[string]int)
	)
	add := func(f Field, depth int) {
		if i, ok := index[f.Name]; ok {
			if depth < depths[i] {
				fields[i] = f
				depths[i] = depth
			}
			return
		}
		index[f.Name] = len(fields)
		fields = append(fields, f)
		depths = append(depths, depth)
	}
	collectFields(t, 0, map[reflect.Type]bool{t: true}, add)
	return fields
}

// collectFields walks t's fields. visited holds the struct types on the
// current embedding path; an embedded type already on it is skipped.
func collectFields(t reflect.Type, depth int, visited map[reflect.Type]bool, add func(Field, int)) {
	for i := range t.NumField() {
		sf := t.Field(i)
		jsonTag := sf.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, _ := parseJSONTag(jsonTag)

		if sf.Anonymous && name == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if !visited[ft] {
					visited[ft] = true
					collectFields(ft, depth+1, visited, add)
					delete(visited, ft)
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}

		add(Field{
			Name:    name,
			Shape:   OfType(sf.Type),
			Default: parseDefaultTag(sf.Tag),
		}, depth)
	}
}

// parseJSONTag splits a json struct tag into its name and options.
func parseJSONTag(tag string) (string, string) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts
}

// parseDefaultTag reads the `default:"..."` tag. The literal "null" declares
// an explicit null default.
func parseDefaultTag(tag reflect.StructTag) DefaultValue {
	v, ok := tag.Lookup("default")
	if !ok {
		return NoDefault
	}
	if v == "null" {
		return DefaultLiteral(nil)
	}
	return DefaultLiteral(v)
}
