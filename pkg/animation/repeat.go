package animation

import (
	"math"
	"time"
)

// Repeat selects how an animation behaves once its duration has elapsed.
type Repeat int

const (
	// RepeatOnce runs forward a single time and holds the end value.
	RepeatOnce Repeat = iota
	// RepeatLoop restarts from the beginning every cycle.
	RepeatLoop
	// RepeatAlternate plays forward, then backward, then forward again.
	RepeatAlternate
)

// String returns a human-readable representation of the repeat policy.
func (r Repeat) String() string {
	switch r {
	case RepeatOnce:
		return "once"
	case RepeatLoop:
		return "repeat"
	case RepeatAlternate:
		return "repeat_alternate"
	default:
		return "unknown"
	}
}

// Progress maps elapsed time to linear progress in [0, 1] under the given
// repeat policy. It reports done when a RepeatOnce animation has reached its
// end; looping policies are never done.
//
// A non-positive duration is treated as already complete: progress is 1.
// Negative elapsed time (a start instant in the future) yields 0.
func Progress(elapsed, duration time.Duration, repeat Repeat) (progress float64, done bool) {
	if duration <= 0 {
		return 1, repeat == RepeatOnce
	}
	if elapsed < 0 {
		return 0, false
	}
	cycles := float64(elapsed) / float64(duration)
	switch repeat {
	case RepeatLoop:
		return math.Mod(cycles, 1), false
	case RepeatAlternate:
		cycle := math.Mod(cycles, 2)
		if cycle < 1 {
			return cycle, false
		}
		return 2 - cycle, false
	default:
		if cycles >= 1 {
			return 1, true
		}
		return cycles, false
	}
}
