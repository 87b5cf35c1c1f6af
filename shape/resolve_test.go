package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	user := RecordOf("User", nil)
	group := RecordOf("Group", nil)

	tests := []struct {
		name     string
		in       *Shape
		wantKind Kind
		wantName string
		wantElem Kind
		noElem   bool
	}{
		{name: "bare primitive", in: IntegerShape(), wantKind: Integer, noElem: true},
		{name: "bare record", in: user, wantKind: Record, wantName: "User", noElem: true},
		{name: "optional primitive", in: Optional(StringShape()), wantKind: String, noElem: true},
		{name: "null only", in: NullShape(), wantKind: Null, noElem: true},
		{name: "union of nulls", in: UnionOf(NullShape(), NullShape()), wantKind: Null, noElem: true},
		{name: "sequence", in: SequenceOf(StringShape()), wantKind: Sequence, wantElem: String},
		{name: "optional sequence", in: Optional(SequenceOf(BoolShape())), wantKind: Sequence, wantElem: Bool},
		{name: "mapping returns key", in: MappingOf(StringShape(), SequenceOf(StringShape())), wantKind: Mapping, wantElem: String},
		{name: "null listed first still skipped", in: UnionOf(NullShape(), FloatShape()), wantKind: Float, noElem: true},
		{name: "first record wins", in: UnionOf(user, group), wantKind: Record, wantName: "User", noElem: true},
		{name: "first concrete after unknown", in: UnionOf(UnknownShape(), group), wantKind: Record, wantName: "Group", noElem: true},
		{name: "nested union", in: UnionOf(UnionOf(NullShape(), IntegerShape()), StringShape()), wantKind: Integer, noElem: true},
		{name: "unresolvable union", in: UnionOf(UnknownShape(), NullShape()), wantKind: Unknown, noElem: true},
		{name: "empty union", in: UnionOf(), wantKind: Unknown, noElem: true},
		{name: "nil", in: nil, wantKind: Unknown, noElem: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, elem := Resolve(tt.in)
			require.NotNil(t, u)
			assert.Equal(t, tt.wantKind, u.Kind)
			if tt.wantName != "" {
				assert.Equal(t, tt.wantName, u.Name)
			}
			if tt.noElem {
				assert.Nil(t, elem)
				return
			}
			require.NotNil(t, elem)
			assert.Equal(t, tt.wantElem, elem.Kind)
		})
	}
}

func TestResolve_SequenceWithoutElement(t *testing.T) {
	u, elem := Resolve(&Shape{Kind: Sequence})
	assert.Equal(t, Sequence, u.Kind)
	require.NotNil(t, elem)
	assert.Equal(t, Unknown, elem.Kind)
}

func TestShape_IsOptional(t *testing.T) {
	assert.True(t, Optional(IntegerShape()).IsOptional())
	assert.True(t, UnionOf(StringShape(), NullShape(), BoolShape()).IsOptional())
	assert.False(t, UnionOf(StringShape(), BoolShape()).IsOptional())
	assert.False(t, SequenceOf(Optional(IntegerShape())).IsOptional())
	assert.False(t, NullShape().IsOptional())
	assert.False(t, (*Shape)(nil).IsOptional())
}

func TestDefaultValue(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		assert.False(t, NoDefault.Present())
		assert.False(t, NoDefault.NonNull())
	})

	t.Run("null literal", func(t *testing.T) {
		d := DefaultLiteral(nil)
		assert.True(t, d.Present())
		assert.False(t, d.NonNull())
	})

	t.Run("literal", func(t *testing.T) {
		d := DefaultLiteral(5)
		assert.True(t, d.NonNull())
		assert.Equal(t, 5, d.Value())
	})

	t.Run("factory", func(t *testing.T) {
		calls := 0
		d := DefaultFactory(func() any {
			calls++
			return []string{}
		})
		assert.True(t, d.NonNull())
		assert.Equal(t, 1, calls)
	})

	t.Run("factory returning nil", func(t *testing.T) {
		d := DefaultFactory(func() any { return nil })
		assert.True(t, d.Present())
		assert.False(t, d.NonNull())
	})

	t.Run("typed nil", func(t *testing.T) {
		tests := []struct {
			name string
			v    any
		}{
			{"pointer", (*int)(nil)},
			{"slice", []string(nil)},
			{"map", map[string]int(nil)},
			{"func", (func())(nil)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				v := tt.v
				assert.False(t, DefaultFactory(func() any { return v }).NonNull())
				assert.False(t, DefaultLiteral(v).NonNull())
			})
		}
	})

	t.Run("zero value", func(t *testing.T) {
		assert.True(t, DefaultLiteral(0).NonNull())
		assert.True(t, DefaultLiteral("").NonNull())
	})
}

func TestRecordOf_FieldsEvaluatedOnce(t *testing.T) {
	calls := 0
	var node *Shape
	node = RecordOf("Node", func() []Field {
		calls++
		return []Field{{Name: "next", Shape: Optional(node)}}
	})

	assert.Len(t, node.Fields(), 1)
	assert.Len(t, node.Fields(), 1)
	assert.Equal(t, 1, calls)
	assert.Same(t, node, node.Fields()[0].Shape.Args[0])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "boolean", Bool.String())
	assert.Equal(t, "record", Record.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
