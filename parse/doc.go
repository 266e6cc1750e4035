// Package parse turns interchange document text into IR.
//
// JSON input is walked token by token; YAML input goes through goccy's
// decoder first and is then lifted into IR.  Structurally invalid input is
// reported with an error wrapping ErrMalformed, never a panic.
package parse
