package schema

import "errors"

var (
	// ErrInvalidField is wrapped by errors for unknown field names, values
	// of the wrong type, and values failing a field's constraint.
	ErrInvalidField = errors.New("invalid field")

	// ErrUnsupportedVersion is wrapped when a document names a spec
	// version no schema is registered for.
	ErrUnsupportedVersion = errors.New("unsupported spec version")
)
