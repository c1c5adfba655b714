// Package state implements the reactive value graph that widgets bind to:
// leaf cells, values derived from them, values sourced from the ambient
// environment, and time-driven animated values.
//
// # Sources
//
// Every value source implements [Readable]; sources that accept writes also
// implement [Writable]. A source caches its current value and refreshes it
// only when [Readable.Sync] is called. Sync reports whether the value changed
// so callers can skip redundant layout or paint work.
//
// Reading a source that has never been synced is a caller error. Set
// [DebugUnsynced] to have such reads reported.
//
// # Cells
//
// Cells are the leaves of the graph. Pick the ownership that fits:
//
//	counter := state.NewExclusive(0)      // one owner; Clone copies the value
//	accent := state.NewShared(color)      // aliases observe each other's writes
//	image := state.NewSynced[[]byte](nil) // writable from any goroutine
//	prefs := state.Static[Preferences]()  // process-wide, keyed by type
//
// Reads and writes go through borrow tokens. A token must be released
// exactly once:
//
//	ref := counter.Value()
//	n := ref.Get()
//	ref.Release()
//
// [Get] and [Update] do the acquire/release dance for you. Taking a write
// token on a cell while any other token on it is live panics: it means a
// combinator is re-entrantly reading a cell it is writing.
//
// # Combinators
//
// [Map1] through [Map6] derive a value from upstream sources with a pure
// function. [Map1W] through [Map6W] add an inverse function so that writes
// flow back upstream:
//
//	celsius := state.Map1W(fahrenheit,
//	    func(f float64) float64 { return (f - 32) / 1.8 },
//	    func(c float64, f *float64) { *f = c*1.8 + 32 },
//	)
//
// Writes through a combinator are visible downstream at the next sync, not
// immediately.
//
// # Environment
//
// An [Environment] is a stack of key/value frames that the widget tree pushes
// around subtrees. [KeyState], [EnvState] and [KeyableState] resolve their
// value against it on every sync and fall back to a default when the key is
// absent.
//
// # Animation
//
// [Animated] computes its value from the time elapsed since it started, an
// easing curve and a repeat policy. It needs no per-frame state, so dropped
// frames never make it drift.
package state
