package builder

import (
	"github.com/erraggy/oasdesc/oas"
)

// Description assembles one OpenAPI document. It owns the document tree and
// the component registry; nodes returned by its builder methods become owned
// by the tree once attached.
//
// Concurrency: Description instances are not safe for concurrent use.
type Description struct {
	doc      *oas.Document
	registry *Registry
	logger   Logger
}

// New creates a Description.
//
// Example:
//
//	desc := builder.New(
//		builder.WithTitle("My API"),
//		builder.WithVersion("1.0.0"),
//		builder.WithServers(&oas.Server{URL: "https://api.example.com"}),
//	)
func New(opts ...Option) *Description {
	cfg := defaultDescriptionConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	info := cfg.info
	doc := oas.NewDocument(&info)
	doc.OpenAPI = cfg.openAPIVersion
	doc.Servers = cfg.servers
	doc.Tags = cfg.tags
	doc.Security = cfg.security
	doc.ExternalDocs = cfg.externalDocs

	return &Description{
		doc:      doc,
		registry: newDocumentRegistry(doc, cfg.logger),
		logger:   cfg.logger,
	}
}

// Document returns the document tree. Callers may mutate attached nodes in
// place; the Description keeps using the same tree.
func (d *Description) Document() *oas.Document {
	return d.doc
}

// Registry returns the component registry.
func (d *Description) Registry() *Registry {
	return d.registry
}

// Info returns the Info object, creating it if needed.
func (d *Description) Info() *oas.Info {
	if d.doc.Info == nil {
		d.doc.Info = &oas.Info{}
	}
	return d.doc.Info
}

// SetTitle sets the title in the Info object.
func (d *Description) SetTitle(title string) *Description {
	d.Info().Title = title
	return d
}

// SetVersion sets the API version in the Info object.
// Note: This is the API version, not the OpenAPI specification version.
func (d *Description) SetVersion(version string) *Description {
	d.Info().Version = version
	return d
}

// SetDescription sets the description in the Info object.
func (d *Description) SetDescription(desc string) *Description {
	d.Info().Description = desc
	return d
}

// SetLicense sets the license in the Info object.
func (d *Description) SetLicense(license *oas.License) *Description {
	d.Info().License = license
	return d
}

// SetContact sets the contact in the Info object.
func (d *Description) SetContact(contact *oas.Contact) *Description {
	d.Info().Contact = contact
	return d
}

// SetExternalDocs sets document-level external documentation.
func (d *Description) SetExternalDocs(docs *oas.ExternalDocs) *Description {
	d.doc.ExternalDocs = docs
	return d
}

// AddServer appends a server.
func (d *Description) AddServer(url, description string) *Description {
	d.doc.Servers = append(d.doc.Servers, &oas.Server{URL: url, Description: description})
	return d
}

// AddTag appends a document-level tag.
func (d *Description) AddTag(name, description string) *Description {
	d.doc.Tags = append(d.doc.Tags, &oas.Tag{Name: name, Description: description})
	return d
}

// AddSecurity appends a global security requirement.
func (d *Description) AddSecurity(requirement oas.SecurityRequirement) *Description {
	d.doc.Security = append(d.doc.Security, requirement)
	return d
}

// AddSecurityScheme adds a scheme to components.securitySchemes.
func (d *Description) AddSecurityScheme(name string, scheme *oas.SecurityScheme) *Description {
	if d.doc.Components == nil {
		d.doc.Components = &oas.Components{}
	}
	if d.doc.Components.SecuritySchemes == nil {
		d.doc.Components.SecuritySchemes = make(map[string]*oas.SecurityScheme)
	}
	d.doc.Components.SecuritySchemes[name] = scheme
	return d
}

// RegisterType registers a record type as a schema component and returns its
// reference. See Registry.Register.
func (d *Description) RegisterType(v any) (string, error) {
	return d.registry.RegisterType(v)
}
