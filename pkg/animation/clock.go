package animation

import (
	"sync"
	"time"
)

// Clock is the time source animated values are computed from.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	clock   Clock = systemClock{}
)

// SetClock installs c as the process-wide animation clock and returns the
// clock it replaced. Nil reinstalls the system clock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = systemClock{}
	}
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	clock = c
	return prev
}

// Now reads the installed clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}
