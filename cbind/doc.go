// Command cbind builds the C shared library exposing DNA records to
// foreign callers:
//
//	go build -buildmode=c-shared -o libhcdna.so ./cbind
//
// Records cross the boundary as opaque uintptr handles; 0 is the failure
// sentinel.  Every char* returned by an hc_dna_* function is a fresh C
// allocation owned by the caller and released with hc_dna_string_free.
// Strings passed in are copied; the caller keeps ownership.  Handles are
// released with hc_dna_free; a released handle fails lookups rather than
// touching freed memory, but callers must still not share one handle
// across threads without their own synchronization.
package main
