package state

import (
	"reflect"

	"github.com/go-drift/reactive/pkg/errors"
)

// cell is single-threaded storage with runtime borrow tracking.
// It satisfies readLock and writeLock so tokens can release into it.
type cell[T any] struct {
	value   T
	readers int
	writing bool
	// version increments on every committed write that changed the value,
	// or on every committed write when equal is nil.
	version uint64
	equal   func(a, b T) bool
	// before is the value when the live write token was taken.
	before T
}

func newCell[T any](v T) *cell[T] {
	return &cell[T]{value: v, equal: valueEqual[T]()}
}

// valueEqual returns == for plain value types, nil otherwise. Pointers and
// channels are left out: a write through one should still count.
func valueEqual[T any]() func(a, b T) bool {
	if !plainValue(reflect.TypeFor[T]()) {
		return nil
	}
	return func(a, b T) bool { return any(a) == any(b) }
}

func plainValue(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return plainValue(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plainValue(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (c *cell[T]) borrow(op string) Ref[T] {
	if c.writing {
		errors.BorrowPanic(op)
	}
	c.readers++
	return Ref[T]{ptr: &c.value, lock: c}
}

func (c *cell[T]) borrowMut(op string) RefMut[T] {
	if c.writing || c.readers > 0 {
		errors.BorrowPanic(op)
	}
	c.writing = true
	if c.equal != nil {
		c.before = c.value
	}
	return RefMut[T]{ptr: &c.value, lock: c}
}

func (c *cell[T]) RUnlock() {
	c.readers--
}

func (c *cell[T]) Unlock() {
	c.writing = false
	if c.equal != nil {
		same := c.equal(c.before, c.value)
		var zero T
		c.before = zero
		if same {
			return
		}
	}
	c.version++
}

// handle is a view of a cell with its own change cursor.
type handle[T any] struct {
	c      *cell[T]
	seen   uint64
	synced bool
}

// Value returns a read token. It panics if a write token is live.
func (h *handle[T]) Value() Ref[T] {
	return h.c.borrow("state.Value")
}

// ValueMut returns a write token. It panics if any other token is live.
func (h *handle[T]) ValueMut() RefMut[T] {
	return h.c.borrowMut("state.ValueMut")
}

// Set replaces the value. It panics if any token is live.
func (h *handle[T]) Set(v T) {
	m := h.c.borrowMut("state.Set")
	*m.ptr = v
	m.Release()
}

// Sync reports whether the value changed since this handle's previous Sync.
// The first Sync always reports a change. For plain value types (numbers,
// strings, and arrays or structs of them) a write that leaves the value
// equal is not a change; for anything holding a pointer, interface, slice,
// map, chan or func every committed write is.
func (h *handle[T]) Sync(*Environment) bool {
	changed := !h.synced || h.seen != h.c.version
	h.seen = h.c.version
	h.synced = true
	return changed
}

// Exclusive is a cell owned by a single widget subtree.
// Cloning copies the value into a new, independent cell.
type Exclusive[T any] struct {
	handle[T]
}

// NewExclusive returns an exclusive cell holding v.
func NewExclusive[T any](v T) *Exclusive[T] {
	return &Exclusive[T]{handle[T]{c: newCell(v)}}
}

// Clone returns an independent cell holding a copy of the current value.
func (e *Exclusive[T]) Clone() *Exclusive[T] {
	return NewExclusive(Get[T](e))
}

// CloneReadable implements Readable.
func (e *Exclusive[T]) CloneReadable() Readable[T] { return e.Clone() }

// CloneWritable implements Writable.
func (e *Exclusive[T]) CloneWritable() Writable[T] { return e.Clone() }

// Shared is a cell aliased by several widget subtrees. Every alias observes
// every write made through any other alias. Shared cells are not safe for
// concurrent use; see [Synced].
type Shared[T any] struct {
	handle[T]
}

// NewShared returns a shared cell holding v.
func NewShared[T any](v T) *Shared[T] {
	return &Shared[T]{handle[T]{c: newCell(v)}}
}

// Alias returns another handle to the same cell. The alias keeps its own
// change cursor and starts unsynced.
func (s *Shared[T]) Alias() *Shared[T] {
	return &Shared[T]{handle[T]{c: s.c}}
}

// SameCell reports whether s and other alias the same storage.
func (s *Shared[T]) SameCell(other *Shared[T]) bool {
	return other != nil && s.c == other.c
}

// CloneReadable implements Readable.
func (s *Shared[T]) CloneReadable() Readable[T] { return s.Alias() }

// CloneWritable implements Writable.
func (s *Shared[T]) CloneWritable() Writable[T] { return s.Alias() }
