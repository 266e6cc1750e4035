// Package dna implements the DNA record: a versioned unit of deployable
// configuration, with a JSON/YAML interchange codec and by-name field
// access suitable for exposure over a foreign-function boundary.
//
// A record is created with New (all fields at their documented defaults,
// spec version "2.0") or by Decode from document text.  It is mutated only
// through Set and the typed fields; it owns all of its memory, and the
// codec round trip Decode(Encode(r)) is field-equivalent to r.
package dna
