package state

import (
	"reflect"
	"sync"
)

// Process-static cells, keyed by value type. Entries are never reclaimed, so
// only use Static for a small, fixed set of singleton types.
var (
	staticMu sync.Mutex
	statics  = make(map[reflect.Type]any)
)

// Static returns a handle to the process-wide cell for T, creating it with
// T's zero value on first use.
func Static[T any]() *Shared[T] {
	return StaticOr(func() T {
		var zero T
		return zero
	})
}

// StaticOr returns a handle to the process-wide cell for T, creating it with
// init() on first use. init runs without the registry lock held and may
// itself call Static for other types; if two callers race, the first stored
// value wins.
//
// The registry is goroutine-safe but the returned cell is not: use it from
// the UI goroutine only.
func StaticOr[T any](init func() T) *Shared[T] {
	key := reflect.TypeFor[T]()

	staticMu.Lock()
	c, ok := statics[key].(*cell[T])
	staticMu.Unlock()
	if ok {
		return &Shared[T]{handle[T]{c: c}}
	}

	fresh := newCell(init())

	staticMu.Lock()
	defer staticMu.Unlock()
	if c, ok := statics[key].(*cell[T]); ok {
		return &Shared[T]{handle[T]{c: c}}
	}
	statics[key] = fresh
	return &Shared[T]{handle[T]{c: fresh}}
}
