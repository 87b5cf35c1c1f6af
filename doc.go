// Package oasdesc builds OpenAPI 3.1 description documents from Go code.
//
// Paths, operations and responses are declared with short builder calls, and
// request and response payload types are turned into schema components by
// inspecting their structure. The finished document serializes to JSON or
// YAML with every absent value left out.
//
// # Overview
//
// The module consists of these packages:
//
//   - shape: type shape descriptors and their derivation from Go types
//   - oas: the OpenAPI 3.1 document model
//   - builder: the Description, its component registry and the builder calls
//   - emitter: null-stripping JSON and YAML output
//   - config: TOML document metadata (info, servers, tags, security)
//   - oaserrors: sentinel and typed errors shared by all packages
//
// # Quick Start
//
//	type Comment struct {
//		ID   int64   `json:"id"`
//		Body *string `json:"body"`
//	}
//
//	desc := builder.New(builder.WithTitle("Blog API"), builder.WithVersion("1.0.0"))
//	resp, err := desc.Response("the comment", builder.WithResponseBody(Comment{}))
//	if err != nil {
//		log.Fatal(err)
//	}
//	op, err := desc.Operation(
//		builder.WithSummary("Get a comment"),
//		builder.WithResponse("200", resp),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	desc.Path("/comments/{commentId}", "Comments", "The comment's ID").Get = op
//
//	if err := desc.WriteFile("openapi.yaml"); err != nil {
//		log.Fatal(err)
//	}
//
// # Command Line
//
// The oasdesc command emits the bundled sample API:
//
//	oasdesc example --format json --output openapi.json
//	oasdesc --config oasdesc.toml example
//	oasdesc version
package oasdesc
