package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// pkgPrefix is stripped from the top of captured stacks.
const pkgPrefix = "github.com/go-drift/reactive/pkg/errors."

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// Handler returns the handler reports are currently sent to.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// SetHandler installs h and returns the previous handler so tests can put
// it back. Nil installs a fresh LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands a recoverable error to the installed handler. Discarded
// writes, misuse of the environment stack and bad theme values all end up
// here; none of them interrupt the caller.
func Report(err *StateError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

// BorrowPanic aborts op with a KindBorrow StateError. Conflicting borrows of
// one cell are structural bugs, so they panic instead of being reported.
func BorrowPanic(op string) {
	panic(&StateError{
		Op:         op,
		Kind:       KindBorrow,
		Err:        ErrBorrowConflict,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// Recover reports a panic in the surrounding function instead of letting it
// unwind further. Use it directly in a defer:
//
//	defer errors.Recover("app.refresh")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r).
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
	})
}

// CaptureStack formats the calling goroutine's stack, starting at the first
// frame outside this package.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	leading := true
	for {
		frame, more := frames.Next()
		if leading && strings.HasPrefix(frame.Function, pkgPrefix) {
			if !more {
				break
			}
			continue
		}
		leading = false
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
