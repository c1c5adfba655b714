package state

import "sync"

type syncCell[T any] struct {
	mu    sync.RWMutex
	value T
}

// Synced is a shared cell that may be written from any goroutine, typically
// a background task reporting a result to the UI.
//
// Reads and writes block while another goroutine holds the lock. Sync always
// reports a change: the UI pays for a redundant downstream recompute rather
// than a dirty-flag handshake across goroutines. A Synced cell outlives the
// widget that created it for as long as any goroutine holds a handle; writes
// after the widget is gone simply land where nobody reads them.
type Synced[T any] struct {
	c *syncCell[T]
}

// NewSynced returns a goroutine-safe cell holding v.
func NewSynced[T any](v T) *Synced[T] {
	return &Synced[T]{c: &syncCell[T]{value: v}}
}

// Value returns a token holding the read lock until Release.
func (s *Synced[T]) Value() Ref[T] {
	s.c.mu.RLock()
	return Ref[T]{ptr: &s.c.value, lock: &s.c.mu}
}

// ValueMut returns a token holding the write lock until Release.
func (s *Synced[T]) ValueMut() RefMut[T] {
	s.c.mu.Lock()
	return RefMut[T]{ptr: &s.c.value, lock: &s.c.mu}
}

// Set replaces the value under the write lock.
func (s *Synced[T]) Set(v T) {
	s.c.mu.Lock()
	s.c.value = v
	s.c.mu.Unlock()
}

// Sync always reports a change.
func (s *Synced[T]) Sync(*Environment) bool {
	return true
}

// AlwaysChanged reports true: Sync carries no change information.
func (s *Synced[T]) AlwaysChanged() bool { return true }

// Alias returns another handle to the same cell.
func (s *Synced[T]) Alias() *Synced[T] {
	return &Synced[T]{c: s.c}
}

// CloneReadable implements Readable.
func (s *Synced[T]) CloneReadable() Readable[T] { return s.Alias() }

// CloneWritable implements Writable.
func (s *Synced[T]) CloneWritable() Writable[T] { return s.Alias() }
