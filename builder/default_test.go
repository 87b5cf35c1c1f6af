package builder

import (
	"testing"

	"github.com/erraggy/oasdesc/oas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	d := Default()
	require.NotNil(t, d)
	assert.Same(t, d, Default())

	doc := d.Document()
	assert.Equal(t, oas.Version, doc.OpenAPI)
	assert.Equal(t, "API Title", doc.Info.Title)
	assert.Equal(t, "0.1.0", doc.Info.Version)
	assert.Equal(t, []oas.SecurityRequirement{{}}, doc.Security)
	require.NotNil(t, doc.Components)
	assert.NotNil(t, doc.Components.Schemas)
	assert.Empty(t, doc.Components.Schemas)
}

func TestResetDefault(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	first := Default()
	first.SetTitle("changed")

	ResetDefault()
	second := Default()

	assert.NotSame(t, first, second)
	assert.Equal(t, "API Title", second.Document().Info.Title)
}
