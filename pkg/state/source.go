package state

import "github.com/go-drift/reactive/pkg/errors"

// DebugUnsynced enables reporting of reads from derived, environment and
// animated sources that have never been synced. It is off by default because
// the check costs a branch on every read.
var DebugUnsynced = false

// Syncer is the part of a source the sync pass drives.
type Syncer interface {
	// Sync refreshes the cached value from the source's dependencies and
	// reports whether it changed. env may be nil, in which case every
	// environment lookup falls back to its default.
	Sync(env *Environment) bool
}

// AlwaysChanged is implemented by sources whose Sync reports a change on
// every call, whether or not the value moved. Frame drivers use it to keep
// such sources from marking their owner dirty; consumers downstream of them
// still report real changes through their own equality checks.
type AlwaysChanged interface {
	Syncer
	AlwaysChanged() bool
}

// Readable is a source whose value can be observed.
type Readable[T any] interface {
	Syncer
	// Value returns the value cached by the last Sync. It never recomputes.
	Value() Ref[T]
	// CloneReadable returns a handle sharing this source's upstream handles.
	CloneReadable() Readable[T]
}

// Writable is a source that also accepts writes.
type Writable[T any] interface {
	Readable[T]
	// ValueMut returns a write token. The write is committed on Release.
	ValueMut() RefMut[T]
	// Set replaces the whole value.
	Set(v T)
	// CloneWritable returns a handle sharing this source's storage.
	CloneWritable() Writable[T]
}

// SyncAll syncs every source and reports whether any of them changed.
// It never short-circuits: every source is synced.
func SyncAll(env *Environment, sources ...Syncer) bool {
	changed := false
	for _, s := range sources {
		if s.Sync(env) {
			changed = true
		}
	}
	return changed
}

func checkSynced(op string, synced bool) {
	if DebugUnsynced && !synced {
		errors.Report(&errors.StateError{
			Op:   op,
			Kind: errors.KindUnknown,
			Err:  errors.ErrUnsyncedRead,
		})
	}
}

// ConstState is a read-only source holding a literal value.
type ConstState[T any] struct {
	value  T
	synced bool
}

// Const returns a source that always holds v.
func Const[T any](v T) *ConstState[T] {
	return &ConstState[T]{value: v}
}

// Value returns the literal.
func (c *ConstState[T]) Value() Ref[T] {
	return Ref[T]{ptr: &c.value}
}

// Sync reports a change only the first time it is called.
func (c *ConstState[T]) Sync(*Environment) bool {
	changed := !c.synced
	c.synced = true
	return changed
}

// CloneReadable returns an independent copy.
func (c *ConstState[T]) CloneReadable() Readable[T] {
	return &ConstState[T]{value: c.value}
}

type readOnly[T any] struct {
	src Readable[T]
}

// ReadOnly hides the write capability of w. Unlike [IgnoreWrites], the result
// does not satisfy Writable at all, so a misplaced write fails to compile.
func ReadOnly[T any](w Writable[T]) Readable[T] {
	return readOnly[T]{src: w}
}

func (r readOnly[T]) Value() Ref[T]              { return r.src.Value() }
func (r readOnly[T]) Sync(env *Environment) bool { return r.src.Sync(env) }
func (r readOnly[T]) CloneReadable() Readable[T] { return readOnly[T]{src: r.src.CloneReadable()} }
