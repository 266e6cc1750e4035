package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	dna "github.com/hcdev/dna-format/go-dna"
	"github.com/hcdev/dna-format/go-dna/debug"
	"github.com/hcdev/dna-format/go-dna/handle"
	"github.com/hcdev/dna-format/go-dna/schema"
)

var records = handle.NewTable[*dna.Dna]()

//export hc_dna_create
func hc_dna_create() C.uintptr_t {
	return C.uintptr_t(records.Put(dna.New()))
}

//export hc_dna_create_from_json
func hc_dna_create_from_json(buf *C.char) C.uintptr_t {
	d, err := dna.Decode([]byte(C.GoString(buf)))
	if err != nil {
		if debug.CBind() {
			debug.Logf("hc_dna_create_from_json: %v\n", err)
		}
		return 0
	}
	return C.uintptr_t(records.Put(d))
}

//export hc_dna_to_json
func hc_dna_to_json(h C.uintptr_t) *C.char {
	d, ok := records.Get(handle.ID(h))
	if !ok {
		return nil
	}
	s, err := dna.EncodeString(d)
	if err != nil {
		return nil
	}
	return C.CString(s)
}

//export hc_dna_free
func hc_dna_free(h C.uintptr_t) {
	if !records.Release(handle.ID(h)) && debug.CBind() {
		debug.Logf("hc_dna_free: stale handle %d\n", uintptr(h))
	}
}

//export hc_dna_string_free
func hc_dna_string_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export hc_dna_get_name
func hc_dna_get_name(h C.uintptr_t) *C.char {
	return getField(h, schema.FieldName)
}

//export hc_dna_set_name
func hc_dna_set_name(h C.uintptr_t, name *C.char) {
	setField(h, schema.FieldName, name)
}

//export hc_dna_get_dna_spec_version
func hc_dna_get_dna_spec_version(h C.uintptr_t) *C.char {
	return getField(h, schema.FieldSpecVersion)
}

//export hc_dna_get_field
func hc_dna_get_field(h C.uintptr_t, field *C.char) *C.char {
	return getField(h, C.GoString(field))
}

//export hc_dna_set_field
func hc_dna_set_field(h C.uintptr_t, field, value *C.char) C.int {
	return setField(h, C.GoString(field), value)
}

func getField(h C.uintptr_t, field string) *C.char {
	d, ok := records.Get(handle.ID(h))
	if !ok {
		return nil
	}
	v, err := d.Get(field)
	if err != nil {
		return nil
	}
	return C.CString(v)
}

func setField(h C.uintptr_t, field string, value *C.char) C.int {
	d, ok := records.Get(handle.ID(h))
	if !ok {
		return -1
	}
	if err := d.Set(field, C.GoString(value)); err != nil {
		if debug.CBind() {
			debug.Logf("hc_dna_set_field %q: %v\n", field, err)
		}
		return -1
	}
	return 0
}

func main() {}
