// Package schema defines the versioned field tables for DNA records.
//
// Each spec version has a Schema: the ordered set of fields a record of
// that version carries, with the IR type, mutability and an optional
// constraint program for each.  The Registry maps spec-version strings to
// schemas and is the dispatch point for version-tagged decoding; "2.0" is
// the current built-in version.
package schema
