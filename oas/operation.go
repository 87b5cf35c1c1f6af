package oas

// Parameter locations.
const (
	ParamInQuery  = "query"
	ParamInHeader = "header"
	ParamInPath   = "path"
	ParamInCookie = "cookie"
)

// MediaTypeJSON is the content type used for record payloads.
const MediaTypeJSON = "application/json"

// Operation describes a single API operation on a path.
type Operation struct {
	Tags         []string                        `json:"tags"`
	Summary      string                          `json:"summary,omitempty"`
	Description  string                          `json:"description,omitempty"`
	ExternalDocs *ExternalDocs                   `json:"externalDocs"`
	OperationID  string                          `json:"operationId,omitempty"`
	Parameters   []*Parameter                    `json:"parameters"`
	RequestBody  *RequestBody                    `json:"requestBody"`
	Responses    Responses                       `json:"responses"`
	Callbacks    map[string]map[string]*PathItem `json:"callbacks"`
	Deprecated   *bool                           `json:"deprecated"`
	Security     []SecurityRequirement           `json:"security"`
	Servers      []*Server                       `json:"servers"`
}

// Parameter describes a single operation or path parameter.
// Required is a pointer so that "unset" stays distinct from false.
type Parameter struct {
	Ref             string `json:"$ref,omitempty"`
	Name            string `json:"name,omitempty"`
	In              string `json:"in,omitempty"`
	Description     string `json:"description,omitempty"`
	Required        *bool  `json:"required"`
	Deprecated      *bool  `json:"deprecated"`
	AllowEmptyValue *bool  `json:"allowEmptyValue"`
}

// RequestBody describes a request payload.
type RequestBody struct {
	Ref         string                `json:"$ref,omitempty"`
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content"`
	Required    *bool                 `json:"required"`
}

// Response describes a single response of an operation.
type Response struct {
	Ref         string                `json:"$ref,omitempty"`
	Description string                `json:"description"`
	Headers     map[string]*Header    `json:"headers"`
	Content     map[string]*MediaType `json:"content"`
	Links       map[string]*Link      `json:"links"`
}

// MediaType carries the schema and examples for one content type.
// An empty MediaType stands for an uninterpreted (raw or file) payload.
type MediaType struct {
	Schema   *Schema              `json:"schema"`
	Example  any                  `json:"example"`
	Examples map[string]*Example  `json:"examples"`
	Encoding map[string]*Encoding `json:"encoding"`
}

// Header describes a response or encoding header.
type Header struct {
	Ref         string `json:"$ref,omitempty"`
	Description string `json:"description,omitempty"`
	Required    *bool  `json:"required"`
	Deprecated  *bool  `json:"deprecated"`
}

// Example is a named example value.
type Example struct {
	Ref           string `json:"$ref,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Description   string `json:"description,omitempty"`
	Value         any    `json:"value"`
	ExternalValue string `json:"externalValue,omitempty"`
}

// Encoding applies to a single schema property of a multipart body.
type Encoding struct {
	ContentType string             `json:"contentType,omitempty"`
	Headers     map[string]*Header `json:"headers"`
}

// Link is a design-time link for a response.
type Link struct {
	Ref          string         `json:"$ref,omitempty"`
	OperationRef string         `json:"operationRef,omitempty"`
	OperationID  string         `json:"operationId,omitempty"`
	Parameters   map[string]any `json:"parameters"`
	RequestBody  any            `json:"requestBody"`
	Description  string         `json:"description,omitempty"`
	Server       *Server        `json:"server"`
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
