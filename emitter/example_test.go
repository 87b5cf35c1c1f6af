package emitter_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasdesc/emitter"
	"github.com/erraggy/oasdesc/oas"
)

// ExampleYAML shows that absent values are left out of the output.
func ExampleYAML() {
	info := &oas.Info{Title: "Tiny", Version: "0.0.1"}

	data, err := emitter.YAML(info)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// title: Tiny
	// version: 0.0.1
}

// ExampleJSON shows that empty collections are kept.
func ExampleJSON() {
	schema := &oas.Schema{Type: oas.TypeObject, Properties: map[string]*oas.Schema{}, Required: []string{}}

	data, err := emitter.JSON(schema)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(data))
	// Output:
	// {
	//   "type": "object",
	//   "properties": {},
	//   "required": []
	// }
}
