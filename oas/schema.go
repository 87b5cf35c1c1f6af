package oas

// Schema is a JSON-Schema-like fragment. Only the keywords the builder
// populates are modeled.
type Schema struct {
	Ref           string             `json:"$ref,omitempty"`
	Type          string             `json:"type,omitempty"`
	Description   string             `json:"description,omitempty"`
	Properties    map[string]*Schema `json:"properties"`
	Required      []string           `json:"required"`
	Items         *Schema            `json:"items"`
	Discriminator *Discriminator     `json:"discriminator"`
	XML           *XML               `json:"xml"`
	ExternalDocs  *ExternalDocs      `json:"externalDocs"`
	Example       any                `json:"example"`
}

// Schema type names.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// Discriminator aids polymorphic deserialization.
type Discriminator struct {
	PropertyName string            `json:"propertyName"`
	Mapping      map[string]string `json:"mapping"`
}

// XML adjusts the XML representation of a property.
type XML struct {
	Name      string `json:"name,omitempty"`
	Namespace string `json:"namespace,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Attribute *bool  `json:"attribute"`
	Wrapped   *bool  `json:"wrapped"`
}
