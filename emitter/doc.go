// Package emitter serializes OpenAPI document trees, or any node of one, to
// JSON and YAML.
//
// Every absent value is dropped before output: a key whose value encodes as
// null is removed at every depth, through both mappings and lists. Empty
// collections are kept, so an empty "required" list or an empty "paths"
// object still appears. Key order follows the Go struct field order of the
// node types; map keys are sorted.
//
// Both formats are produced from the same stripped tree and are structurally
// equivalent.
//
// # Example
//
//	data, err := emitter.Emit(doc, emitter.FormatYAML)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(data)
//
// # Writing files
//
// [WriteFile] picks the format from the file extension (.json, .yaml, .yml)
// and writes with mode 0600.
package emitter
