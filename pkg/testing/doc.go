// Package testing provides helpers for deterministic tests of state sources.
//
// Whole node trees are driven frame by frame with the treetest subpackage.
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	clk := reactivetest.InstallFakeClock(t)
//	anim := state.AnimateFloat64(0, 100, time.Second, nil, animation.RepeatOnce)
//	clk.Advance(500 * time.Millisecond)
//	anim.Sync(env)
//
// # Diagnostics
//
// Capture reports (discarded writes, environment misuse) instead of printing
// them to stderr:
//
//	rec := reactivetest.CaptureReports(t)
//	readOnly.Set(1)
//	if rec.Count(errors.KindReadOnly) != 1 { ... }
package testing
