package builder

import (
	"github.com/erraggy/oasdesc/emitter"
)

// MarshalJSON returns the document as indented JSON with absent values
// removed. It implements json.Marshaler, so a Description can be embedded in
// other JSON output.
func (d *Description) MarshalJSON() ([]byte, error) {
	return emitter.JSON(d.doc)
}

// MarshalYAML returns the document as YAML with absent values removed.
func (d *Description) MarshalYAML() ([]byte, error) {
	return emitter.YAML(d.doc)
}

// Emit serializes the document in the given format.
func (d *Description) Emit(format emitter.Format) ([]byte, error) {
	return emitter.Emit(d.doc, format)
}

// WriteFile writes the document to path, choosing JSON or YAML from the
// file extension.
func (d *Description) WriteFile(path string) error {
	if err := emitter.WriteFile(d.doc, path); err != nil {
		return err
	}
	d.logger.Info("wrote document", "path", path, "paths", len(d.doc.Paths), "schemas", d.registry.Len())
	return nil
}

// String returns the document as YAML, or an error message when it cannot be
// encoded.
func (d *Description) String() string {
	data, err := d.MarshalYAML()
	if err != nil {
		return "error: " + err.Error()
	}
	return string(data)
}
