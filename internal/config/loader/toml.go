package loader

import (
	"bytes"
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// decodeTOML decodes TOML data into v. Keys that do not map to a field
// of v are rejected.
func decodeTOML(path string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: path, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &strictErr):
		if len(strictErr.Errors) > 0 {
			perr.Line, perr.Column = strictErr.Errors[0].Position()
			perr.Message = "unknown key " + keyString(strictErr.Errors[0].Key())
		}
	case errors.As(err, &decErr):
		perr.Line, perr.Column = decErr.Position()
	}
	return perr
}

func keyString(key toml.Key) string {
	var b bytes.Buffer
	for i, part := range key {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
