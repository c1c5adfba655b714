package state

import (
	"time"

	"github.com/go-drift/reactive/pkg/animation"
	"github.com/go-drift/reactive/pkg/errors"
)

// Key identifies a typed slot in the [Environment]. Keys compare by identity,
// so two keys created with the same name are still distinct slots.
type Key[T any] struct {
	name string
}

// NewKey creates a new environment key. The name is used for diagnostics
// and theme files.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// Name returns the key's name.
func (k *Key[T]) Name() string {
	return k.name
}

func (k *Key[T]) String() string {
	return k.name
}

// Bind pairs the key with a value for pushing onto an Environment.
func (k *Key[T]) Bind(v T) Binding {
	return Binding{key: k, name: k.name, value: v}
}

// Binding is a key/value pair pushed onto an Environment.
type Binding struct {
	key   any
	name  string
	value any
}

// Name returns the bound key's name.
func (b Binding) Name() string {
	return b.name
}

// Value returns the bound value.
func (b Binding) Value() any {
	return b.value
}

// Environment is the ambient, stack-shaped key/value store that the widget
// tree pushes frames onto around subtrees. Lookups see the innermost binding
// for a key.
//
// An Environment is used from the UI goroutine only. Sources never retain it
// beyond the Sync call it was passed to.
type Environment struct {
	frames    [][]Binding
	frameTime time.Time
}

// NewEnvironment returns an empty environment.
func NewEnvironment(bindings ...Binding) *Environment {
	e := &Environment{}
	if len(bindings) > 0 {
		e.Push(bindings...)
	}
	return e
}

// Push adds a frame. Later bindings in the same frame shadow earlier ones.
func (e *Environment) Push(bindings ...Binding) {
	e.frames = append(e.frames, bindings)
}

// Pop removes the innermost frame. Popping an empty environment is reported
// and otherwise ignored.
func (e *Environment) Pop() {
	n := len(e.frames)
	if n == 0 {
		errors.Report(&errors.StateError{
			Op:   "state.Environment.Pop",
			Kind: errors.KindEnvironment,
			Err:  errors.ErrEmptyEnvironment,
		})
		return
	}
	e.frames[n-1] = nil
	e.frames = e.frames[:n-1]
}

// With pushes bindings, runs fn, and pops the frame again, even if fn panics.
func (e *Environment) With(bindings []Binding, fn func()) {
	e.Push(bindings...)
	defer e.Pop()
	fn()
}

// Depth returns the number of frames on the stack.
func (e *Environment) Depth() int {
	return len(e.frames)
}

// SetFrameTime pins the time animated sources observe for this frame so
// every source in one pass sees the same instant. The zero time unpins it.
func (e *Environment) SetFrameTime(t time.Time) {
	e.frameTime = t
}

// FrameTime returns the pinned frame time, or the animation clock's current
// time when none is pinned.
func (e *Environment) FrameTime() time.Time {
	if e == nil || e.frameTime.IsZero() {
		return animation.Now()
	}
	return e.frameTime
}

// Lookup returns the innermost value bound to key. A nil environment holds
// no bindings.
func Lookup[T any](e *Environment, key *Key[T]) (T, bool) {
	if e != nil {
		for i := len(e.frames) - 1; i >= 0; i-- {
			frame := e.frames[i]
			for j := len(frame) - 1; j >= 0; j-- {
				if frame[j].key == any(key) {
					v, ok := frame[j].value.(T)
					return v, ok
				}
			}
		}
	}
	var zero T
	return zero, false
}
