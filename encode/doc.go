// Package encode renders IR as interchange document text.
//
// The JSON form is produced directly so that output is byte-reproducible:
// member order is whatever the node carries, indentation is fixed, and the
// wire option drops all whitespace.  The YAML form goes through goccy with
// an order-preserving MapSlice.  Encoding a well-formed node never fails
// for any reason other than the writer erroring.
package encode
