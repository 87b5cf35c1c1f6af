package builder

import (
	"sync"

	"github.com/erraggy/oasdesc/oas"
)

var (
	defaultMu   sync.Mutex
	defaultDesc *Description
)

// Default returns the process-wide Description, creating it on first use.
// It starts with title "API Title", version "0.1.0", an optional-security
// requirement and an empty schemas map. Prefer New and holding the instance;
// Default exists for scripts that build a single document.
func Default() *Description {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultDesc == nil {
		defaultDesc = New(
			WithTitle("API Title"),
			WithVersion("0.1.0"),
			WithDocumentSecurity(oas.SecurityRequirement{}),
		)
		defaultDesc.registry.slots()
	}
	return defaultDesc
}

// ResetDefault discards the process-wide Description. The next call to
// Default creates a fresh one.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDesc = nil
}
