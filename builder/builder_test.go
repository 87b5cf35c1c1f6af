package builder

import (
	"testing"

	"github.com/erraggy/oasdesc/oas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d := New()

	doc := d.Document()
	assert.Equal(t, oas.Version, doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.NotNil(t, doc.Paths)
	assert.Empty(t, doc.Paths)
	assert.Nil(t, doc.Components)
	assert.NotNil(t, d.Registry())
}

func TestNew_Options(t *testing.T) {
	d := New(
		WithTitle("My Test"),
		WithVersion("1.0.0"),
		WithLicense(&oas.License{Name: "MIT"}),
		WithContact(&oas.Contact{Name: "API Team"}),
		WithServers(&oas.Server{URL: "https://api.example.com"}),
		WithDocumentTags(&oas.Tag{Name: "notes"}),
		WithDocumentSecurity(oas.SecurityRequirement{}),
		WithExternalDocs(&oas.ExternalDocs{URL: "https://docs.example.com"}),
		WithOpenAPIVersion("3.1.0"),
		WithLogger(nil),
	)

	doc := d.Document()
	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Equal(t, "My Test", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Equal(t, "MIT", doc.Info.License.Name)
	assert.Equal(t, "API Team", doc.Info.Contact.Name)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com", doc.Servers[0].URL)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "notes", doc.Tags[0].Name)
	assert.Equal(t, []oas.SecurityRequirement{{}}, doc.Security)
	assert.Equal(t, "https://docs.example.com", doc.ExternalDocs.URL)
	assert.IsType(t, NopLogger{}, d.logger)
}

func TestNew_WithInfo(t *testing.T) {
	d := New(
		WithInfo(oas.Info{Title: "Base", Version: "2.0.0", Summary: "short"}),
		WithTitle("Override"),
	)

	info := d.Document().Info
	assert.Equal(t, "Override", info.Title)
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, "short", info.Summary)
}

func TestNew_WithInfoFields(t *testing.T) {
	d := New(
		WithTitle("My Test"),
		WithVersion("1.0.0"),
		WithLicense(&oas.License{Name: "MIT"}),
		WithInfoFields(oas.Info{Version: "2.0.0", Description: "Notes API"}),
	)

	info := d.Document().Info
	assert.Equal(t, "My Test", info.Title)
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, "Notes API", info.Description)
	require.NotNil(t, info.License)
	assert.Equal(t, "MIT", info.License.Name)
	assert.Nil(t, info.Contact)
}

func TestDescription_Setters(t *testing.T) {
	d := New().
		SetTitle("Blog API").
		SetVersion("1.2.3").
		SetDescription("Comments and notes").
		SetLicense(&oas.License{Name: "MIT"}).
		SetContact(&oas.Contact{Email: "api@example.com"}).
		SetExternalDocs(&oas.ExternalDocs{URL: "https://docs.example.com"}).
		AddServer("https://api.example.com", "Production").
		AddServer("https://staging.example.com", "").
		AddTag("notes", "Note operations").
		AddSecurity(oas.SecurityRequirement{"apiKey": {}}).
		AddSecurityScheme("apiKey", &oas.SecurityScheme{Type: "apiKey", Name: "X-API-Key", In: "header"})

	doc := d.Document()
	assert.Equal(t, "Blog API", doc.Info.Title)
	assert.Equal(t, "1.2.3", doc.Info.Version)
	assert.Equal(t, "Comments and notes", doc.Info.Description)
	assert.Equal(t, "MIT", doc.Info.License.Name)
	assert.Equal(t, "api@example.com", doc.Info.Contact.Email)
	assert.Equal(t, "https://docs.example.com", doc.ExternalDocs.URL)
	require.Len(t, doc.Servers, 2)
	assert.Equal(t, "Production", doc.Servers[0].Description)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "Note operations", doc.Tags[0].Description)
	assert.Equal(t, []oas.SecurityRequirement{{"apiKey": {}}}, doc.Security)
	require.Contains(t, doc.Components.SecuritySchemes, "apiKey")
	assert.Equal(t, "X-API-Key", doc.Components.SecuritySchemes["apiKey"].Name)
}

func TestDescription_InfoCreatedOnDemand(t *testing.T) {
	d := New()
	d.Document().Info = nil

	d.SetTitle("again")
	assert.Equal(t, "again", d.Document().Info.Title)
}
