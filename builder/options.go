package builder

import (
	"github.com/erraggy/oasdesc/oas"
)

// Option configures a Description. Options are applied by New.
type Option func(*descriptionConfig)

// descriptionConfig holds Description configuration applied via options.
type descriptionConfig struct {
	openAPIVersion string
	info           oas.Info
	servers        []*oas.Server
	tags           []*oas.Tag
	security       []oas.SecurityRequirement
	externalDocs   *oas.ExternalDocs
	logger         Logger
}

// defaultDescriptionConfig returns the configuration used when no options are given.
func defaultDescriptionConfig() *descriptionConfig {
	return &descriptionConfig{
		openAPIVersion: oas.Version,
		logger:         NopLogger{},
	}
}

// WithInfo replaces the whole Info object.
func WithInfo(info oas.Info) Option {
	return func(cfg *descriptionConfig) {
		cfg.info = info
	}
}

// WithInfoFields sets the non-empty fields of info and leaves the others
// unchanged.
func WithInfoFields(info oas.Info) Option {
	return func(cfg *descriptionConfig) {
		if info.Title != "" {
			cfg.info.Title = info.Title
		}
		if info.Version != "" {
			cfg.info.Version = info.Version
		}
		if info.Summary != "" {
			cfg.info.Summary = info.Summary
		}
		if info.Description != "" {
			cfg.info.Description = info.Description
		}
		if info.TermsOfService != "" {
			cfg.info.TermsOfService = info.TermsOfService
		}
		if info.Contact != nil {
			cfg.info.Contact = info.Contact
		}
		if info.License != nil {
			cfg.info.License = info.License
		}
	}
}

// WithTitle sets the API title.
func WithTitle(title string) Option {
	return func(cfg *descriptionConfig) {
		cfg.info.Title = title
	}
}

// WithVersion sets the API version (not the OpenAPI version).
func WithVersion(version string) Option {
	return func(cfg *descriptionConfig) {
		cfg.info.Version = version
	}
}

// WithLicense sets the API license.
func WithLicense(license *oas.License) Option {
	return func(cfg *descriptionConfig) {
		cfg.info.License = license
	}
}

// WithContact sets the API contact.
func WithContact(contact *oas.Contact) Option {
	return func(cfg *descriptionConfig) {
		cfg.info.Contact = contact
	}
}

// WithServers appends servers.
func WithServers(servers ...*oas.Server) Option {
	return func(cfg *descriptionConfig) {
		cfg.servers = append(cfg.servers, servers...)
	}
}

// WithDocumentTags appends document-level tags.
func WithDocumentTags(tags ...*oas.Tag) Option {
	return func(cfg *descriptionConfig) {
		cfg.tags = append(cfg.tags, tags...)
	}
}

// WithDocumentSecurity appends global security requirements. An empty
// requirement marks security as optional.
func WithDocumentSecurity(requirements ...oas.SecurityRequirement) Option {
	return func(cfg *descriptionConfig) {
		cfg.security = append(cfg.security, requirements...)
	}
}

// WithExternalDocs sets document-level external documentation.
func WithExternalDocs(docs *oas.ExternalDocs) Option {
	return func(cfg *descriptionConfig) {
		cfg.externalDocs = docs
	}
}

// WithOpenAPIVersion overrides the "openapi" field. Defaults to oas.Version.
func WithOpenAPIVersion(version string) Option {
	return func(cfg *descriptionConfig) {
		cfg.openAPIVersion = version
	}
}

// WithLogger sets the logger for builder events. nil restores NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *descriptionConfig) {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
	}
}
