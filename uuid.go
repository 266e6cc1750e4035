package dna

import "github.com/google/uuid"

// NewUUID returns a fresh random uuid value for the uuid field.
func NewUUID() string {
	return uuid.NewString()
}

// AssignUUID sets and returns a fresh uuid on the record.
func (d *Dna) AssignUUID() string {
	d.UUID = NewUUID()
	return d.UUID
}
