package core

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/reactive/pkg/animation"
	"github.com/go-drift/reactive/pkg/graphics"
	"github.com/go-drift/reactive/pkg/state"
	reactivetest "github.com/go-drift/reactive/pkg/testing"
)

var colorKey = state.NewKey[graphics.Color]("test_color")

// testNode is a minimal tree node with optional bindings.
type testNode struct {
	SourceBag
	name     string
	bindings []state.Binding
	children []Node
}

func (n *testNode) VisitChildren(visitor func(Node) bool) {
	for _, c := range n.children {
		if !visitor(c) {
			return
		}
	}
}

func (n *testNode) Provide(*state.Environment) []state.Binding {
	return n.bindings
}

// recordingSource logs the order in which it is synced.
type recordingSource struct {
	name string
	log  *[]string
}

func (s recordingSource) Sync(*state.Environment) bool {
	*s.log = append(*s.log, s.name)
	return false
}

func TestFrameSyncsParentsFirst(t *testing.T) {
	var order []string
	leaf := &testNode{name: "leaf"}
	Use(&leaf.SourceBag, recordingSource{"leaf", &order})
	mid := &testNode{name: "mid", children: []Node{leaf}}
	Use(&mid.SourceBag, recordingSource{"mid.a", &order})
	Use(&mid.SourceBag, recordingSource{"mid.b", &order})
	sibling := &testNode{name: "sibling"}
	Use(&sibling.SourceBag, recordingSource{"sibling", &order})
	root := &testNode{name: "root", children: []Node{mid, sibling}}
	Use(&root.SourceBag, recordingSource{"root", &order})

	stats := NewSyncOwner().Frame(root)

	want := []string{"root", "mid.a", "mid.b", "leaf", "sibling"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("sync order mismatch (-want +got):\n%s", diff)
	}
	if stats.Nodes != 4 || stats.Sources != 5 || stats.Changed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.NeedsRebuild() {
		t.Error("no source changed, NeedsRebuild should be false")
	}
}

func TestFrameEnvironmentFallback(t *testing.T) {
	leaf := &testNode{name: "leaf"}
	color := Use(&leaf.SourceBag, state.NewKeyState(colorKey, graphics.ColorRed))
	provider := &testNode{name: "provider", children: []Node{leaf}}
	owner := NewSyncOwner()

	owner.Frame(leaf)
	if got := state.Get[graphics.Color](color); got != graphics.ColorRed {
		t.Fatalf("without provider = %v, want red", got)
	}

	provider.bindings = []state.Binding{colorKey.Bind(graphics.ColorBlue)}
	stats := owner.Frame(provider)
	if got := state.Get[graphics.Color](color); got != graphics.ColorBlue {
		t.Fatalf("under provider = %v, want blue", got)
	}
	if len(stats.Dirty) != 1 || stats.Dirty[0] != leaf {
		t.Errorf("Dirty = %v, want [leaf]", stats.Dirty)
	}

	provider.bindings = nil
	owner.Frame(provider)
	if got := state.Get[graphics.Color](color); got != graphics.ColorRed {
		t.Errorf("after provider scope = %v, want red", got)
	}
	if d := owner.Env.Depth(); d != 0 {
		t.Errorf("environment depth after frame = %d, want 0", d)
	}
}

func TestFrameBindingsAreScopedToSubtree(t *testing.T) {
	inside := &testNode{name: "inside"}
	insideColor := Use(&inside.SourceBag, state.NewKeyState(colorKey, graphics.ColorRed))
	outside := &testNode{name: "outside"}
	outsideColor := Use(&outside.SourceBag, state.NewKeyState(colorKey, graphics.ColorRed))
	provider := &testNode{
		name:     "provider",
		bindings: []state.Binding{colorKey.Bind(graphics.ColorGreen)},
		children: []Node{inside},
	}
	root := &testNode{name: "root", children: []Node{provider, outside}}

	NewSyncOwner().Frame(root)

	if got := state.Get[graphics.Color](insideColor); got != graphics.ColorGreen {
		t.Errorf("inside = %v, want green", got)
	}
	if got := state.Get[graphics.Color](outsideColor); got != graphics.ColorRed {
		t.Errorf("outside = %v, want red", got)
	}
}

func TestFrameSharedWriteVisibleNextFrame(t *testing.T) {
	a := state.NewShared(1)
	b := a.Alias()
	reader := &testNode{name: "reader"}
	Use(&reader.SourceBag, b)
	owner := NewSyncOwner()

	if stats := owner.Frame(reader); stats.Changed != 1 {
		t.Fatalf("first frame Changed = %d, want 1", stats.Changed)
	}
	if stats := owner.Frame(reader); stats.Changed != 0 {
		t.Fatalf("idle frame Changed = %d, want 0", stats.Changed)
	}

	a.Set(7)
	var dirty []Node
	owner.OnDirty = func(n Node) { dirty = append(dirty, n) }
	owner.Frame(reader)
	if got := state.Get[int](b); got != 7 {
		t.Errorf("alias = %d, want 7", got)
	}
	if len(dirty) != 1 {
		t.Errorf("OnDirty calls = %d, want 1", len(dirty))
	}
}

func TestFrameSyncedSourceDoesNotDirtyNode(t *testing.T) {
	result := state.NewSynced("")
	n := &testNode{name: "loader"}
	Use(&n.SourceBag, result)
	length := Use(&n.SourceBag, state.Map1[string](result, func(s string) int { return len(s) }))
	owner := NewSyncOwner()

	owner.Frame(n)
	stats := owner.Frame(n)
	if stats.NeedsRebuild() || stats.Changed != 0 || stats.Volatile != 1 {
		t.Fatalf("idle frame = %+v, want clean with one volatile source", stats)
	}

	result.Set("ready")
	stats = owner.Frame(n)
	if len(stats.Dirty) != 1 || stats.Changed != 1 {
		t.Errorf("write frame Dirty = %d, Changed = %d, want 1 and 1", len(stats.Dirty), stats.Changed)
	}
	if got := state.Get[int](length); got != 5 {
		t.Errorf("length = %d, want 5", got)
	}
}

func TestFrameStampsClockTime(t *testing.T) {
	clock := reactivetest.InstallFakeClock(t)
	fade := state.AnimateFloat64(0, 100, 2*time.Second, animation.LinearCurve, animation.RepeatOnce)
	n := &testNode{name: "fade"}
	Use(&n.SourceBag, fade)
	owner := NewSyncOwner()

	clock.Advance(time.Second)
	stats := owner.Frame(n)
	if !stats.Time.Equal(clock.Now()) {
		t.Errorf("frame time = %v, want %v", stats.Time, clock.Now())
	}
	if got := state.Get[float64](fade); got != 50 {
		t.Errorf("half way = %v, want 50", got)
	}

	clock.Advance(5 * time.Second)
	if stats := owner.Frame(n); stats.Changed != 1 {
		t.Errorf("settling frame Changed = %d, want 1", stats.Changed)
	}
	if stats := owner.Frame(n); stats.NeedsRebuild() {
		t.Error("settled animation should not need a rebuild")
	}
}

func TestFramePanicUnwindsEnvironment(t *testing.T) {
	boom := &testNode{name: "boom"}
	Use(&boom.SourceBag, panicSource{})
	root := &testNode{
		name:     "root",
		bindings: []state.Binding{colorKey.Bind(graphics.ColorBlue)},
		children: []Node{boom},
	}
	owner := NewSyncOwner()

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Errorf("recovered %v, want boom", r)
			}
		}()
		owner.Frame(root)
	}()
	if d := owner.Env.Depth(); d != 0 {
		t.Errorf("depth after panic = %d, want 0", d)
	}
}

type panicSource struct{}

func (panicSource) Sync(*state.Environment) bool {
	panic("boom")
}

func TestFrameNilEnvAndRoot(t *testing.T) {
	var owner SyncOwner
	stats := owner.FrameAt(nil, time.Unix(10, 0))
	if stats.Nodes != 0 {
		t.Errorf("Nodes = %d, want 0", stats.Nodes)
	}
	if owner.Env == nil {
		t.Fatal("Env should be created on first frame")
	}
	if got := owner.Env.FrameTime(); !got.Equal(time.Unix(10, 0)) {
		t.Errorf("FrameTime = %v", got)
	}
}
