// Package blogapi describes a small blog comments API. It is what
// "oasdesc example" emits and doubles as an end-to-end fixture.
package blogapi

import (
	"net/http"

	"github.com/erraggy/oasdesc/builder"
	"github.com/erraggy/oasdesc/oas"
)

// RequestExample is the body accepted when creating comment notes.
type RequestExample struct {
	Nomph map[string][]string `json:"nomph"`
	Floof *int                `json:"floof"`
	Bop   []int               `json:"bop"`
	Hrmm  bool                `json:"hrmm"`
}

// ResponseSubclassExample is nested in ResponseExample.
type ResponseSubclassExample struct {
	Zedd string `json:"zedd"`
	Alo  bool   `json:"alo"`
}

// ResponseExample is returned after creating comment notes.
type ResponseExample struct {
	Kerf  bool                    `json:"kerf"`
	Murph string                  `json:"murph"`
	Suub  ResponseSubclassExample `json:"suub"`
}

const (
	// FilesPath is the comment notes endpoint.
	FilesPath = "/blogs/{blogId}/comments/{commentId}/files"
	// UploadPath is the raw upload endpoint.
	UploadPath = "/test"
)

// New returns a Description for the blog API. opts are applied after the
// built-in metadata, so they can override title, version and license.
func New(opts ...builder.Option) (*builder.Description, error) {
	base := []builder.Option{
		builder.WithTitle("My Test"),
		builder.WithVersion("1.0.0"),
		builder.WithLicense(&oas.License{Name: "MIT"}),
		builder.WithDocumentSecurity(oas.SecurityRequirement{}),
	}
	d := builder.New(append(base, opts...)...)
	if err := Register(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Register adds the blog API paths to d.
func Register(d *builder.Description) error {
	ok, err := d.Response("my response for 200",
		builder.WithResponseHeaders(builder.Param("header-name", "my response header").WithRequired(false)),
		builder.WithResponseBody(ResponseExample{}),
	)
	if err != nil {
		return err
	}
	file, err := d.Response("response File", builder.WithResponseBody("*/*"))
	if err != nil {
		return err
	}

	notes, err := d.Operation(
		builder.WithSummary("Create comment notes"),
		builder.WithTags("creating", "notes"),
		builder.WithCookieParams(builder.Param("cookieName", "cookieDescription").WithRequired(true)),
		builder.WithQueryParams(builder.Param("queryName", "queryDesc")),
		builder.WithHeaderParams(builder.Param("headerName", "headerDesc").WithRequired(false)),
		builder.WithRequestBody(RequestExample{}),
		builder.WithResponses(map[string]*oas.Response{
			"200": ok,
			"201": file,
		}),
	)
	if err != nil {
		return err
	}
	d.Path(FilesPath, "Blog comments notes!", "The blog's ID", "The comment's ID").Post = notes

	upload, err := d.Operation(
		builder.WithSummary("upload file"),
		builder.WithTags("creating"),
		builder.WithRequestBody("image/*"),
	)
	if err != nil {
		return err
	}
	return d.AddOperation(http.MethodPost, UploadPath, upload)
}
