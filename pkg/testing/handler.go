package testing

import (
	"sync"
	"testing"

	"github.com/go-drift/reactive/pkg/errors"
)

// RecordingHandler is an errors.ErrorHandler that keeps every report.
// All methods are safe for concurrent use.
type RecordingHandler struct {
	mu     sync.Mutex
	errs   []*errors.StateError
	panics []*errors.PanicError
}

// CaptureReports installs a RecordingHandler as the global error handler and
// restores the previous handler when the test ends.
func CaptureReports(t testing.TB) *RecordingHandler {
	t.Helper()
	h := &RecordingHandler{}
	prev := errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return h
}

// HandleError records err.
func (h *RecordingHandler) HandleError(err *errors.StateError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

// HandlePanic records err.
func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

// Errors returns a copy of the recorded errors.
func (h *RecordingHandler) Errors() []*errors.StateError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.StateError(nil), h.errs...)
}

// Panics returns a copy of the recorded panics.
func (h *RecordingHandler) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}

// Count returns how many recorded errors have the given kind.
func (h *RecordingHandler) Count(kind errors.ErrorKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, err := range h.errs {
		if err.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (h *RecordingHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = nil
	h.panics = nil
}
