package builder

import (
	"net/http"
	"testing"

	"github.com/erraggy/oasdesc/oas"
	"github.com/erraggy/oasdesc/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescription_Path(t *testing.T) {
	d := New()

	item := d.Path("/blogs/{blogId}/comments/{commentId}/files", "Blog comments notes!",
		"The blog's ID", "The comment's ID")

	require.NotNil(t, item)
	assert.Equal(t, "Blog comments notes!", item.Summary)
	require.Len(t, item.Parameters, 2)
	assert.Equal(t, &oas.Parameter{Name: "blogId", In: oas.ParamInPath, Description: "The blog's ID", Required: oas.Bool(true)}, item.Parameters[0])
	assert.Equal(t, &oas.Parameter{Name: "commentId", In: oas.ParamInPath, Description: "The comment's ID", Required: oas.Bool(true)}, item.Parameters[1])
	assert.Same(t, item, d.Document().Paths["/blogs/{blogId}/comments/{commentId}/files"])
}

func TestDescription_PathIdempotent(t *testing.T) {
	d := New()

	first := d.Path("/a/{id}", "first", "the id")
	second := d.Path("/a/{id}", "second", "ignored")

	assert.Same(t, first, second)
	assert.Equal(t, "first", second.Summary)
	assert.Equal(t, "the id", second.Parameters[0].Description)
	assert.Len(t, d.Document().Paths, 1)
}

func TestDescription_PathDescriptions(t *testing.T) {
	tests := []struct {
		name         string
		template     string
		descriptions []string
		want         []string
	}{
		{"fewer descriptions", "/a/{x}/{y}", []string{"X"}, []string{"X", ""}},
		{"no descriptions", "/a/{x}/{y}", nil, []string{"", ""}},
		{"extra descriptions dropped", "/a/{x}", []string{"X", "Y", "Z"}, []string{"X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := New().Path(tt.template, "", tt.descriptions...)
			require.Len(t, item.Parameters, len(tt.want))
			for i, p := range item.Parameters {
				assert.Equal(t, tt.want[i], p.Description)
				assert.True(t, *p.Required)
			}
		})
	}
}

func TestDescription_PathWithoutPlaceholders(t *testing.T) {
	item := New().Path("/test", "", "unused")
	assert.Nil(t, item.Parameters)
	assert.Empty(t, item.Summary)
}

func TestPathNames(t *testing.T) {
	assert.Equal(t, []string{"blogId", "commentId"}, PathNames("/blogs/{blogId}/comments/{commentId}"))
	assert.Equal(t, []string{""}, PathNames("/odd/{}"))
	assert.Empty(t, PathNames("/plain"))
}

func TestDescription_Webhook(t *testing.T) {
	d := New()

	hook := d.Webhook("newComment")
	hook.Post = &oas.Operation{Summary: "notify"}

	assert.Same(t, hook, d.Webhook("newComment"))
	assert.Nil(t, hook.Parameters)
	assert.Len(t, d.Document().Webhooks, 1)
}

func TestDescription_AddOperation(t *testing.T) {
	d := New()
	op := &oas.Operation{Summary: "list"}

	require.NoError(t, d.AddOperation(http.MethodGet, "/items", op))
	assert.Same(t, op, d.Document().Paths["/items"].Get)

	require.NoError(t, d.AddOperation("patch", "/items", op))
	assert.Same(t, op, d.Document().Paths["/items"].Patch)

	err := d.AddOperation("CONNECT", "/items", op)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrUnsupportedMethod)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)

	var be *BuilderError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "CONNECT /items", be.Location())
}
