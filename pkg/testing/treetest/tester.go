// Package treetest drives sync passes over node trees under a fake clock.
//
//	func TestFade(t *testing.T) {
//	    tester := treetest.NewTreeTesterWithT(t)
//	    tester.PumpTree(newFader())
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
package treetest

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/reactive/pkg/animation"
	"github.com/go-drift/reactive/pkg/core"
	"github.com/go-drift/reactive/pkg/state"
	reactivetest "github.com/go-drift/reactive/pkg/testing"
	"github.com/go-drift/reactive/pkg/theme"
)

// FrameDuration is the clock advance between frames in PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tree did not settle")

// TreeTester runs frames over a node tree with a fake clock. The root
// environment frame holds the tester's theme bindings.
type TreeTester struct {
	owner      *core.SyncOwner
	root       core.Node
	clock      *reactivetest.FakeClock
	prevClock  animation.Clock
	theme      *theme.ThemeData
	dispatches []func()
	last       core.FrameStats
	frames     int
}

// NewTreeTester creates a tester with the default light theme and installs
// its fake clock. Call Cleanup when done, or use NewTreeTesterWithT.
func NewTreeTester() *TreeTester {
	clk := reactivetest.NewFakeClock()
	t := &TreeTester{
		clock: clk,
		theme: theme.DefaultLightTheme(),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTreeTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTreeTesterWithT(t testing.TB) *TreeTester {
	tester := NewTreeTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock.
func (t *TreeTester) Cleanup() {
	t.root = nil
	t.owner = nil
	animation.SetClock(t.prevClock)
}

// SetTheme replaces the theme. Must be called before PumpTree.
func (t *TreeTester) SetTheme(td *theme.ThemeData) {
	t.theme = td
}

// Clock returns the fake clock for advancing time in tests.
func (t *TreeTester) Clock() *reactivetest.FakeClock {
	return t.clock
}

// Owner returns the sync owner of the mounted tree, or nil before PumpTree.
func (t *TreeTester) Owner() *core.SyncOwner {
	return t.owner
}

// PumpTree mounts root under a fresh environment and runs one frame.
func (t *TreeTester) PumpTree(root core.Node) core.FrameStats {
	t.root = root
	t.owner = core.NewSyncOwner(t.theme.Bindings()...)
	t.frames = 0
	return t.Pump()
}

// Pump drains queued dispatches and runs a single frame at the current
// clock time.
func (t *TreeTester) Pump() core.FrameStats {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	if t.owner == nil {
		t.owner = core.NewSyncOwner(t.theme.Bindings()...)
	}
	t.last = t.owner.Frame(t.root)
	t.frames++
	return t.last
}

// PumpAndSettle runs frames until a frame reports no changed source and no
// dispatch is queued. Each frame advances the fake clock by FrameDuration.
func (t *TreeTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *TreeTester) needsWork() bool {
	return t.last.NeedsRebuild() || len(t.dispatches) > 0
}

// Dispatch queues fn to run before the next frame, the way a background
// result is handed to the UI goroutine.
func (t *TreeTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// LastFrame returns the stats of the most recent frame.
func (t *TreeTester) LastFrame() core.FrameStats {
	return t.last
}

// Frames returns the number of frames run since PumpTree.
func (t *TreeTester) Frames() int {
	return t.frames
}

// Root returns the mounted root node.
func (t *TreeTester) Root() core.Node {
	return t.root
}

// Find evaluates a finder against the mounted tree.
func (t *TreeTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	var nodes []core.Node
	if bf, ok := finder.(*bindingFinder); ok {
		nodes = bf.evaluateIn(t.root, t.environment())
	} else {
		nodes = finder.Evaluate(t.root)
	}
	return FinderResult{nodes: nodes, finder: finder}
}

// environment returns the owner's environment, or a fresh one holding the
// theme bindings before the first frame.
func (t *TreeTester) environment() *state.Environment {
	if t.owner != nil && t.owner.Env != nil {
		return t.owner.Env
	}
	return state.NewEnvironment(t.theme.Bindings()...)
}
