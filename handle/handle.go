// Package handle maps pointer-sized tokens to internally owned values for
// use across a foreign-function boundary.
//
// Raw Go pointers must not be handed to foreign code, so the boundary
// deals in IDs.  Release invalidates the table entry, which turns any
// later use of a stale token into a failed lookup instead of a read of
// freed memory.
package handle

import "sync"

// ID is an opaque boundary token.  0 is never a valid ID and serves as the
// failure sentinel on the C side.
type ID uintptr

// Table owns the token space for one kind of value.  Safe for concurrent
// use; operations on the values themselves are not serialized here.
type Table[T any] struct {
	mu   sync.Mutex
	next ID
	m    map[ID]T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{m: map[ID]T{}}
}

// Put stores v and returns its token.
func (t *Table[T]) Put(v T) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.m[t.next] = v
	return t.next
}

// Get looks a token up; ok is false for released or never-issued tokens.
func (t *Table[T]) Get(id ID) (v T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok = t.m[id]
	return v, ok
}

// Release invalidates a token.  Returns false when the token was already
// released or never issued, so double release is detectable rather than
// undefined.
func (t *Table[T]) Release(id ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.m[id]; !ok {
		return false
	}
	delete(t.m, id)
	return true
}

// Len reports the number of live tokens.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.m)
}
