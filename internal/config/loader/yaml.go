package loader

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes YAML data into v. Keys that do not map to a field
// of v are rejected. An empty document leaves v unchanged.
func decodeYAML(path string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	perr := &ParseError{Path: path, Message: err.Error(), Err: err}

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		perr.Message = typeErr.Errors[0]
	}
	return perr
}
