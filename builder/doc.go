// Package builder constructs OpenAPI 3.1 description documents.
//
// A [Description] owns one [oas.Document] and one [Registry]. Builder calls
// turn short argument lists into document subtrees, and any record type used
// as a request or response payload is registered as a reusable schema
// component on the way.
//
// # Quick Start
//
//	type Comment struct {
//		ID   int64   `json:"id"`
//		Body *string `json:"body"`
//	}
//
//	desc := builder.New(builder.WithTitle("Blog API"), builder.WithVersion("1.0.0"))
//
//	ok, err := desc.Response("the comment", builder.WithResponseBody(Comment{}))
//	if err != nil {
//		log.Fatal(err)
//	}
//	op, err := desc.Operation(
//		builder.WithSummary("Get a comment"),
//		builder.WithQueryParams(builder.Param("expand", "Expand nested objects")),
//		builder.WithResponses(map[string]*oas.Response{"200": ok}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	desc.Path("/comments/{commentId}", "Comments", "The comment's ID").Get = op
//
//	out, _ := desc.MarshalYAML()
//
// # Schema Generation
//
// Payload shapes come from package shape, either derived from Go types by
// reflection or written by hand. The fragment mapper applies this table, in
// order:
//
//   - record → $ref to #/components/schemas/<Name>
//   - integer, float, complex → number
//   - boolean → boolean
//   - string → string
//   - sequence → array, items from the element
//   - null → null
//   - anything else → object
//
// Optional and union layers are stripped first; a union resolves to its first
// concrete alternative.
//
// # Required Fields
//
// A record field is required unless its shape is optional (a pointer, or a
// union with null). An optional field with a non-null default is still
// required, since it is always present in practice:
//
//	type Query struct {
//		A int                           // required
//		B *int `default:"null"`         // optional
//		C *int `default:"5"`            // required
//	}
//
// # Errors
//
// Only two caller mistakes are reported: a body spec that is neither a media
// type string nor a record, and a responses key outside "100".."599" and
// "default". Both are returned as [BuilderErrors] and match
// [oaserrors.ErrConfig]. Everything else degrades: unknown field types map to
// object, and missing path parameter descriptions are left out.
//
// # Concurrency
//
// A Description is meant to be assembled by a single goroutine at startup.
// It is not safe for concurrent use.
package builder
