package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

type inner struct {
	Name  *string `json:"name"`
	Value int     `json:"value"`
}

type outer struct {
	Title    string            `json:"title"`
	Missing  *inner            `json:"missing"`
	Nested   *inner            `json:"nested"`
	List     []*inner          `json:"list"`
	Empty    []string          `json:"empty"`
	Nothing  []string          `json:"nothing"`
	Labels   map[string]*inner `json:"labels"`
	Raw      any               `json:"raw"`
	Ratio    float64           `json:"ratio"`
	Enabled  bool              `json:"enabled"`
	Children []any             `json:"children"`
}

func sampleOuter() outer {
	return outer{
		Title:    "doc",
		Nested:   &inner{Value: 1},
		List:     []*inner{{Value: 2}, nil},
		Empty:    []string{},
		Labels:   map[string]*inner{"b": nil, "a": {Value: 3}},
		Ratio:    0.5,
		Children: []any{map[string]any{"x": nil, "y": "z"}},
	}
}

func TestStrip(t *testing.T) {
	got, err := Strip(sampleOuter())
	require.NoError(t, err)

	want := map[string]any{
		"title":    "doc",
		"nested":   map[string]any{"value": int64(1)},
		"list":     []any{map[string]any{"value": int64(2)}, nil},
		"empty":    []any{},
		"labels":   map[string]any{"a": map[string]any{"value": int64(3)}},
		"ratio":    0.5,
		"enabled":  false,
		"children": []any{map[string]any{"y": "z"}},
	}
	assert.Equal(t, want, got)
}

func TestStrip_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"string", "s", "s"},
		{"int", 42, int64(42)},
		{"negative", -7, int64(-7)},
		{"float", 1.25, 1.25},
		{"exponent", 1e21, 1e21},
		{"huge unsigned", uint64(18446744073709551615), float64(18446744073709551615)},
		{"bool", true, true},
		{"empty map", map[string]any{}, map[string]any{}},
		{"all null map", map[string]any{"a": nil}, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strip(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrip_Unencodable(t *testing.T) {
	_, err := Strip(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emitter: failed to encode")
}

func TestTree_KeepsFieldOrder(t *testing.T) {
	node, err := Tree(sampleOuter())
	require.NoError(t, err)
	require.Equal(t, yaml.MappingNode, node.Kind)

	var keys []string
	for i := 0; i < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	assert.Equal(t, []string{"title", "nested", "list", "empty", "labels", "ratio", "enabled", "children"}, keys)
}

func TestWriteJSON(t *testing.T) {
	node, err := Tree(map[string]any{"k": []any{"a\"b", 1, 2.5, true, nil}, "n": nil})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, node))
	assert.Equal(t, `{"k":["a\"b",1,2.5,true,null]}`, buf.String())
}
