// Package config loads document metadata for oasdesc from TOML files.
//
// The file supplies everything about a document that is not derived from
// code: info, servers, tags, global security and output preferences.
//
//	version = 1
//
//	[info]
//	title = "Blog API"
//	version = "1.0.0"
//
//	[info.license]
//	name = "MIT"
//
//	[[servers]]
//	url = "https://api.example.com"
//
//	[output]
//	format = "json"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdesc/builder"
	"github.com/erraggy/oasdesc/oas"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	// ErrConfigFileNotFound is returned when no config file exists at the
	// given path or in any search path.
	ErrConfigFileNotFound = errors.New("could not find config file in any config path")
	// ErrConfigVersionMissing is returned when the file has no version field.
	ErrConfigVersionMissing = errors.New("config file is missing version field")
	// ErrConfigVersionMismatch is returned when the file version is not CurrentVersion.
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion is the config file layout version this package reads.
const CurrentVersion = 1

// FileName is the config file name looked up in the search paths.
const FileName = "oasdesc.toml"

const defaultFormat = "yaml"

// Metadata is the content of a config file.
type Metadata struct {
	Version      int                   `koanf:"version"`
	Info         Info                  `koanf:"info"`
	Servers      []Server              `koanf:"servers"`
	Tags         []Tag                 `koanf:"tags"`
	Security     []map[string][]string `koanf:"security"`
	ExternalDocs *ExternalDocs         `koanf:"external_docs"`
	Output       Output                `koanf:"output"`
	Log          Log                   `koanf:"log"`
}

// Info is the [info] section.
type Info struct {
	Title          string   `koanf:"title"`
	Version        string   `koanf:"version"`
	Summary        string   `koanf:"summary"`
	Description    string   `koanf:"description"`
	TermsOfService string   `koanf:"terms_of_service"`
	Contact        *Contact `koanf:"contact"`
	License        *License `koanf:"license"`
}

// Contact is the [info.contact] section.
type Contact struct {
	Name  string `koanf:"name"`
	URL   string `koanf:"url"`
	Email string `koanf:"email"`
}

// License is the [info.license] section.
type License struct {
	Name       string `koanf:"name"`
	Identifier string `koanf:"identifier"`
	URL        string `koanf:"url"`
}

// Server is one [[servers]] entry.
type Server struct {
	URL         string `koanf:"url"`
	Description string `koanf:"description"`
}

// Tag is one [[tags]] entry.
type Tag struct {
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
}

// ExternalDocs is the [external_docs] section.
type ExternalDocs struct {
	URL         string `koanf:"url"`
	Description string `koanf:"description"`
}

// Output is the [output] section.
type Output struct {
	// Format is "json" or "yaml". Defaults to "yaml".
	Format string `koanf:"format"`
	// Path is the output file. Empty means standard output.
	Path string `koanf:"path"`
}

// Log is the [log] section.
type Log struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `koanf:"level"`
}

// Defaults returns the metadata used when no config file is given.
func Defaults() *Metadata {
	m := &Metadata{Version: CurrentVersion}
	m.applyDefaults()
	return m
}

// SearchPaths returns the directories searched for FileName, in order.
func SearchPaths() []string {
	paths := []string{".oasdesc", "config", "."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".oasdesc"))
	}
	return paths
}

// Load reads the config file at path. An empty path searches SearchPaths for
// FileName. A missing output format falls back to yaml.
func Load(path string) (*Metadata, error) {
	if path == "" {
		found, err := find()
		if err != nil {
			return nil, err
		}
		path = found
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error loading config %s: %w", path, err)
	}

	var m Metadata
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := checkVersion(path, m.Version); err != nil {
		return nil, err
	}

	m.applyDefaults()
	return &m, nil
}

// find returns the first existing FileName in SearchPaths.
func find() (string, error) {
	for _, dir := range SearchPaths() {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, FileName)
}

// checkVersion checks if the config file version is correct.
func checkVersion(path string, current int) error {
	if current == 0 {
		return fmt.Errorf("%w: %s", ErrConfigVersionMissing, path)
	}
	if current != CurrentVersion {
		return fmt.Errorf("%w: %s (got: %d, expected: %d)",
			ErrConfigVersionMismatch, path, current, CurrentVersion)
	}
	return nil
}

func (m *Metadata) applyDefaults() {
	if m.Output.Format == "" {
		m.Output.Format = defaultFormat
	}
}

// Options converts the metadata into builder options. Only the info fields
// set in the file are applied, so the options can be layered over a
// Description's own title, version and license.
func (m *Metadata) Options() []builder.Option {
	info := oas.Info{
		Title:          m.Info.Title,
		Version:        m.Info.Version,
		Summary:        m.Info.Summary,
		Description:    m.Info.Description,
		TermsOfService: m.Info.TermsOfService,
	}
	if c := m.Info.Contact; c != nil {
		info.Contact = &oas.Contact{Name: c.Name, URL: c.URL, Email: c.Email}
	}
	if l := m.Info.License; l != nil {
		info.License = &oas.License{Name: l.Name, Identifier: l.Identifier, URL: l.URL}
	}

	var opts []builder.Option
	if info != (oas.Info{}) {
		opts = append(opts, builder.WithInfoFields(info))
	}

	for _, s := range m.Servers {
		opts = append(opts, builder.WithServers(&oas.Server{URL: s.URL, Description: s.Description}))
	}
	for _, t := range m.Tags {
		opts = append(opts, builder.WithDocumentTags(&oas.Tag{Name: t.Name, Description: t.Description}))
	}
	for _, req := range m.Security {
		opts = append(opts, builder.WithDocumentSecurity(securityRequirement(req)))
	}
	if m.ExternalDocs != nil {
		opts = append(opts, builder.WithExternalDocs(&oas.ExternalDocs{
			URL:         m.ExternalDocs.URL,
			Description: m.ExternalDocs.Description,
		}))
	}
	return opts
}

// securityRequirement copies a decoded requirement, making nil scope lists
// empty so they encode as [].
func securityRequirement(req map[string][]string) oas.SecurityRequirement {
	out := make(oas.SecurityRequirement, len(req))
	for name, scopes := range req {
		if scopes == nil {
			scopes = []string{}
		}
		out[name] = scopes
	}
	return out
}
