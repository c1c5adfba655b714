// Package errors provides structured error reporting for the reactive state system.
//
// Most conditions in the state graph are recoverable and are reported rather
// than returned: a write discarded by a read-only facade, popping an empty
// environment, or an unknown key in a theme file. Reports flow to a pluggable
// [ErrorHandler]; the default [LogHandler] writes one line per report to stderr.
//
// Borrow violations are the exception. They indicate a wiring bug and panic
// with a *StateError of kind [KindBorrow].
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindBorrow indicates conflicting read and write access to one cell.
	KindBorrow
	// KindReadOnly indicates a write sent to a source that discards writes.
	KindReadOnly
	// KindEnvironment indicates misuse of the environment stack.
	KindEnvironment
	// KindConfig indicates a problem loading theme or configuration data.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBorrow:
		return "borrow"
	case KindReadOnly:
		return "read-only"
	case KindEnvironment:
		return "environment"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors wrapped by StateError.Err.
var (
	ErrBorrowConflict   = stderrors.New("value already borrowed")
	ErrWriteDiscarded   = stderrors.New("write discarded by read-only source")
	ErrEmptyEnvironment = stderrors.New("pop on empty environment")
	ErrUnsupportedTheme = stderrors.New("unsupported theme version")
	ErrUnknownKey       = stderrors.New("unknown environment key")
	ErrReservedKey      = stderrors.New("key name reserved by a built-in theme value")
	ErrUnsyncedRead     = stderrors.New("value read before first sync")
)

// StateError represents a structured error raised by the state system.
type StateError struct {
	// Op is the operation that failed (e.g., "state.Shared.ValueMut").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Key is the environment or theme key involved, if any.
	Key string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.SyncOwner.Frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ErrorHandler receives errors reported by the state system.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *StateError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
