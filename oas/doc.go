// Package oas defines the in-memory OpenAPI 3.1 document tree.
//
// The types mirror the OpenAPI object model. Field conventions follow one
// rule so the emitter can drop unset fields without losing intent: optional
// scalar strings are omitted when empty, while pointers, maps, slices and
// untyped values encode as null when unset and are stripped by the emitter.
// A non-nil empty map or slice is kept, so `paths: {}` and `security: [{}]`
// survive emission.
//
// Types that can stand in for a reference carry a Ref field serialized as
// "$ref".
package oas
