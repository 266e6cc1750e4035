// Package ir defines the in-memory representation of interchange documents.
//
// A document is a tree of Nodes.  Leaf nodes hold strings, numbers, bools
// or null; interior nodes are objects (parallel Fields/Values slices) or
// arrays (Values only).  The IR is the meeting point of the record model,
// the parser and the encoder: parse produces it, encode consumes it, and
// the record model converts itself to and from it.
package ir
