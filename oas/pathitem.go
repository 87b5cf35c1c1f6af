package oas

import (
	"net/http"
	"strings"

	"github.com/erraggy/oasdesc/oaserrors"
)

// PathItem describes the operations available on a single path.
type PathItem struct {
	Ref         string       `json:"$ref,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Description string       `json:"description,omitempty"`
	Servers     []*Server    `json:"servers"`
	Parameters  []*Parameter `json:"parameters"`
	Get         *Operation   `json:"get"`
	Put         *Operation   `json:"put"`
	Post        *Operation   `json:"post"`
	Delete      *Operation   `json:"delete"`
	Options     *Operation   `json:"options"`
	Head        *Operation   `json:"head"`
	Patch       *Operation   `json:"patch"`
	Trace       *Operation   `json:"trace"`
}

// slot returns the address of the operation field for method.
func (p *PathItem) slot(method string) **Operation {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return &p.Get
	case http.MethodPut:
		return &p.Put
	case http.MethodPost:
		return &p.Post
	case http.MethodDelete:
		return &p.Delete
	case http.MethodOptions:
		return &p.Options
	case http.MethodHead:
		return &p.Head
	case http.MethodPatch:
		return &p.Patch
	case http.MethodTrace:
		return &p.Trace
	}
	return nil
}

// SetOperation assigns op to the slot for method (case-insensitive).
func (p *PathItem) SetOperation(method string, op *Operation) error {
	s := p.slot(method)
	if s == nil {
		return oaserrors.NewUnsupportedMethod(method)
	}
	*s = op
	return nil
}

// Operation returns the operation for method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if s := p.slot(method); s != nil {
		return *s
	}
	return nil
}

// Operations returns the non-nil operations keyed by upper-case method.
func (p *PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for _, m := range Methods {
		if op := p.Operation(m); op != nil {
			ops[m] = op
		}
	}
	return ops
}

// Methods lists the HTTP methods a path item has slots for.
var Methods = []string{
	http.MethodGet,
	http.MethodPut,
	http.MethodPost,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodHead,
	http.MethodPatch,
	http.MethodTrace,
}
