package testing

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/reactive/pkg/animation"
)

// Epoch is the instant every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that only moves when told to. It is safe
// to advance from one goroutine while sources read it from another.
type FakeClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFakeClock returns a clock standing at Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// InstallFakeClock makes a new FakeClock the animation clock for the rest of
// the test.
func InstallFakeClock(t testing.TB) *FakeClock {
	t.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

// Now implements animation.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Elapsed returns how far the clock has moved past Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set jumps to t, which may be in the past.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
