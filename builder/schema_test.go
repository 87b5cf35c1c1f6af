package builder

import (
	"testing"

	"github.com/erraggy/oasdesc/oas"
	"github.com/erraggy/oasdesc/shape"
	"github.com/stretchr/testify/assert"
)

type fragmentChoice struct{}

func (fragmentChoice) DescribeShape() *shape.Shape {
	return shape.UnionOf(shape.NullShape(), shape.StringShape(), shape.IntegerShape())
}

func TestRegistry_Fragment(t *testing.T) {
	tests := []struct {
		name string
		in   *shape.Shape
		want *oas.Schema
	}{
		{"integer", shape.IntegerShape(), &oas.Schema{Type: oas.TypeNumber}},
		{"float", shape.FloatShape(), &oas.Schema{Type: oas.TypeNumber}},
		{"complex", shape.ComplexShape(), &oas.Schema{Type: oas.TypeNumber}},
		{"bool", shape.BoolShape(), &oas.Schema{Type: oas.TypeBoolean}},
		{"string", shape.StringShape(), &oas.Schema{Type: oas.TypeString}},
		{"null", shape.NullShape(), &oas.Schema{Type: oas.TypeNull}},
		{"unknown", shape.UnknownShape(), &oas.Schema{Type: oas.TypeObject}},
		{"mapping", shape.MappingOf(shape.StringShape(), shape.IntegerShape()), &oas.Schema{Type: oas.TypeObject}},
		{"nil", nil, &oas.Schema{Type: oas.TypeObject}},
		{
			"sequence of strings",
			shape.SequenceOf(shape.StringShape()),
			&oas.Schema{Type: oas.TypeArray, Items: &oas.Schema{Type: oas.TypeString}},
		},
		{
			"sequence without element",
			&shape.Shape{Kind: shape.Sequence},
			&oas.Schema{Type: oas.TypeArray, Items: &oas.Schema{Type: oas.TypeObject}},
		},
		{
			"nested sequence",
			shape.SequenceOf(shape.SequenceOf(shape.Optional(shape.BoolShape()))),
			&oas.Schema{Type: oas.TypeArray, Items: &oas.Schema{Type: oas.TypeArray, Items: &oas.Schema{Type: oas.TypeBoolean}}},
		},
		{"optional integer", shape.Optional(shape.IntegerShape()), &oas.Schema{Type: oas.TypeNumber}},
		{"union first concrete wins", shape.UnionOf(shape.NullShape(), shape.StringShape(), shape.IntegerShape()), &oas.Schema{Type: oas.TypeString}},
		{"union of nulls", shape.UnionOf(shape.NullShape(), shape.NullShape()), &oas.Schema{Type: oas.TypeNull}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(nil)
			assert.Equal(t, tt.want, r.Fragment(tt.in))
			assert.Zero(t, r.Len())
		})
	}
}

func TestRegistry_FragmentRecord(t *testing.T) {
	r := NewRegistry(nil)

	got := r.Fragment(shape.Optional(shape.Of(author{})))
	assert.Equal(t, &oas.Schema{Ref: "#/components/schemas/author"}, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_FragmentOf(t *testing.T) {
	r := NewRegistry(nil)

	assert.Equal(t, &oas.Schema{Type: oas.TypeArray, Items: &oas.Schema{Type: oas.TypeString}}, r.FragmentOf([]string{}))
	assert.Equal(t, &oas.Schema{Type: oas.TypeString}, r.FragmentOf(fragmentChoice{}))
	assert.Equal(t, &oas.Schema{Type: oas.TypeNull}, r.FragmentOf(nil))
	assert.Equal(t, &oas.Schema{Type: oas.TypeArray, Items: &oas.Schema{Ref: "#/components/schemas/author"}}, r.FragmentOf([]author{}))
}
