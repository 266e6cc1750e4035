package dna

import (
	"github.com/hcdev/dna-format/go-dna/parse"
	"github.com/hcdev/dna-format/go-dna/schema"
)

var (
	// ErrMalformedDocument reports decode input that is not a structurally
	// valid document, including wrong value types for known fields.
	ErrMalformedDocument = parse.ErrMalformed

	// ErrInvalidField reports an unknown field name or a rejected value on
	// a typed setter.
	ErrInvalidField = schema.ErrInvalidField

	// ErrUnsupportedVersion reports a document whose dna_spec_version has
	// no registered schema.
	ErrUnsupportedVersion = schema.ErrUnsupportedVersion
)
