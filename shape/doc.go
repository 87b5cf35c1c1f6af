// Package shape classifies the declared types of payload fields.
//
// A [Shape] is a tagged variant over a closed set of kinds: the primitives
// (null, boolean, integer, float, complex, string), the containers (sequence
// and mapping), unions, records and an opaque Unknown kind. Optional is not a
// separate kind; it is a union with Null.
//
// Shapes can be written by hand:
//
//	comment := shape.RecordOf("Comment", func() []shape.Field {
//		return []shape.Field{
//			{Name: "id", Shape: shape.IntegerShape()},
//			{Name: "body", Shape: shape.Optional(shape.StringShape()), Default: shape.DefaultLiteral("")},
//		}
//	})
//
// or derived from Go types by reflection with [Of] and [OfType]:
//
//   - *T → Optional(T)
//   - []T, [N]T → sequence of T
//   - []byte, time.Time → string
//   - map[K]V → mapping
//   - struct → record named by the declared type name
//   - interfaces, channels, funcs → unknown
//
// Types that implement [Describer] supply their own descriptor, which is how a
// Go payload declares a union.
//
// [Resolve] strips optional, union and container layers to find the real
// underlying shape of a field and its element shape.
package shape
