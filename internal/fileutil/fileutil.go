// Package fileutil holds file output helpers shared by the emitter and CLI.
package fileutil

import (
	"fmt"
	"os"
)

// OwnerReadWrite is the file permission mode for emitted documents, which
// may describe internal APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// WriteOwnerOnly writes data to path with OwnerReadWrite permissions.
// An existing file keeps its mode; os.WriteFile only applies perm on create.
func WriteOwnerOnly(path string, data []byte) error {
	if err := os.WriteFile(path, data, OwnerReadWrite); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
