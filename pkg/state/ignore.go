package state

import "github.com/go-drift/reactive/pkg/errors"

// IgnoreWritesState presents any readable source through the Writable API and
// drops every write with a diagnostic report. It lets one generic widget be
// instantiated with either a writable or a read-only binding.
type IgnoreWritesState[T any] struct {
	src Readable[T]
}

// IgnoreWrites wraps src. Writes never reach src.
func IgnoreWrites[T any](src Readable[T]) *IgnoreWritesState[T] {
	return &IgnoreWritesState[T]{src: src}
}

// Value reads the wrapped source.
func (s *IgnoreWritesState[T]) Value() Ref[T] {
	return s.src.Value()
}

// Sync syncs the wrapped source.
func (s *IgnoreWritesState[T]) Sync(env *Environment) bool {
	return s.src.Sync(env)
}

// ValueMut returns a token over a scratch copy. Whatever is written to it is
// discarded on Release.
func (s *IgnoreWritesState[T]) ValueMut() RefMut[T] {
	buf := new(T)
	*buf = Get(s.src)
	return RefMut[T]{ptr: buf, commit: discardValueMut[T]}
}

// Set discards v.
func (s *IgnoreWritesState[T]) Set(T) {
	reportDiscard("state.IgnoreWrites.Set")
}

// CloneReadable implements Readable.
func (s *IgnoreWritesState[T]) CloneReadable() Readable[T] {
	return &IgnoreWritesState[T]{src: s.src.CloneReadable()}
}

// CloneWritable implements Writable.
func (s *IgnoreWritesState[T]) CloneWritable() Writable[T] {
	return &IgnoreWritesState[T]{src: s.src.CloneReadable()}
}

func discardValueMut[T any](T) {
	reportDiscard("state.IgnoreWrites.ValueMut")
}

func reportDiscard(op string) {
	errors.Report(&errors.StateError{
		Op:   op,
		Kind: errors.KindReadOnly,
		Err:  errors.ErrWriteDiscarded,
	})
}
