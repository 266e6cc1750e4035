package parse

import "errors"

// ErrMalformed is wrapped by every error returned for input that is not a
// structurally valid document.  Callers test with errors.Is.
var ErrMalformed = errors.New("malformed document")
