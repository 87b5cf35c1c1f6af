package oas

// Version is the OpenAPI version written to new documents.
const Version = "3.1.1"

// Document is the root of an OpenAPI description.
type Document struct {
	OpenAPI           string                `json:"openapi"`
	Info              *Info                 `json:"info"`
	JSONSchemaDialect string                `json:"jsonSchemaDialect,omitempty"`
	Servers           []*Server             `json:"servers"`
	Paths             map[string]*PathItem  `json:"paths"`
	Webhooks          map[string]*PathItem  `json:"webhooks"`
	Components        *Components           `json:"components"`
	Security          []SecurityRequirement `json:"security"`
	Tags              []*Tag                `json:"tags"`
	ExternalDocs      *ExternalDocs         `json:"externalDocs"`
}

// NewDocument returns a document with the given info, the current OpenAPI
// version and an empty path map.
func NewDocument(info *Info) *Document {
	return &Document{
		OpenAPI: Version,
		Info:    info,
		Paths:   make(map[string]*PathItem),
	}
}

// Info is the API metadata.
type Info struct {
	Title          string   `json:"title"`
	Version        string   `json:"version"`
	Summary        string   `json:"summary,omitempty"`
	Description    string   `json:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact"`
	License        *License `json:"license"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

// License information for the exposed API.
type License struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Server is a target host.
type Server struct {
	URL         string                     `json:"url"`
	Description string                     `json:"description,omitempty"`
	Variables   map[string]*ServerVariable `json:"variables"`
}

// ServerVariable is a substitution variable in a server URL template.
type ServerVariable struct {
	Default     string   `json:"default"`
	Enum        []string `json:"enum"`
	Description string   `json:"description,omitempty"`
}

// ExternalDocs references external documentation.
type ExternalDocs struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs"`
}

// SecurityRequirement maps security scheme names to required scopes.
// An empty requirement makes security optional.
type SecurityRequirement map[string][]string

// Components holds reusable objects.
type Components struct {
	Schemas         map[string]*Schema              `json:"schemas"`
	Responses       map[string]*Response            `json:"responses"`
	Parameters      map[string]*Parameter           `json:"parameters"`
	Examples        map[string]*Example             `json:"examples"`
	RequestBodies   map[string]*RequestBody         `json:"requestBodies"`
	Headers         map[string]*Header              `json:"headers"`
	SecuritySchemes map[string]*SecurityScheme      `json:"securitySchemes"`
	Links           map[string]*Link                `json:"links"`
	Callbacks       map[string]map[string]*PathItem `json:"callbacks"`
	PathItems       map[string]*PathItem            `json:"pathItems"`
}

// SecurityScheme defines a security scheme usable by operations.
type SecurityScheme struct {
	Ref              string      `json:"$ref,omitempty"`
	Type             string      `json:"type,omitempty"`
	Description      string      `json:"description,omitempty"`
	Name             string      `json:"name,omitempty"`
	In               string      `json:"in,omitempty"`
	Scheme           string      `json:"scheme,omitempty"`
	BearerFormat     string      `json:"bearerFormat,omitempty"`
	Flows            *OAuthFlows `json:"flows"`
	OpenIDConnectURL string      `json:"openIdConnectUrl,omitempty"`
}

// OAuthFlows configures the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `json:"implicit"`
	Password          *OAuthFlow `json:"password"`
	ClientCredentials *OAuthFlow `json:"clientCredentials"`
	AuthorizationCode *OAuthFlow `json:"authorizationCode"`
}

// OAuthFlow configures one OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string            `json:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty"`
	RefreshURL       string            `json:"refreshUrl,omitempty"`
	Scopes           map[string]string `json:"scopes"`
}
