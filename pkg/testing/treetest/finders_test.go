package treetest

import (
	"testing"

	"github.com/go-drift/reactive/pkg/core"
	"github.com/go-drift/reactive/pkg/graphics"
	"github.com/go-drift/reactive/pkg/state"
	"github.com/go-drift/reactive/pkg/testing/internal/testbed"
	"github.com/go-drift/reactive/pkg/theme"
)

type fixture struct {
	inner, outer *testbed.Swatch
	counter      *testbed.Counter
	blue         *testbed.Section
	root         *testbed.Section
}

func newFixture() fixture {
	f := fixture{
		inner:   testbed.NewSwatch(),
		outer:   testbed.NewSwatch(),
		counter: testbed.NewCounter(3),
	}
	f.blue = &testbed.Section{
		Bindings: []state.Binding{theme.Accent.Bind(graphics.ColorBlue)},
		Children: []core.Node{f.inner, f.counter},
	}
	f.root = &testbed.Section{Children: []core.Node{f.blue, f.outer}}
	return f
}

func TestByType(t *testing.T) {
	tester := NewTreeTesterWithT(t)
	f := newFixture()
	tester.PumpTree(f.root)

	swatches := tester.Find(ByType[*testbed.Swatch]())
	if swatches.Count() != 2 {
		t.Fatalf("Count = %d, want 2", swatches.Count())
	}
	if swatches.At(0) != f.inner || swatches.At(1) != f.outer {
		t.Error("matches should be in pre-order")
	}
	if tester.Find(ByType[*testbed.Fader]()).Exists() {
		t.Error("no fader in tree")
	}
	if got := FindFirst[*testbed.Counter](tester, ByType[*testbed.Counter]()); got != f.counter {
		t.Error("FindFirst returned the wrong counter")
	}
}

func TestDescendantOfBinding(t *testing.T) {
	tester := NewTreeTesterWithT(t)
	f := newFixture()
	tester.PumpTree(f.root)

	providers := tester.Find(ByBinding(theme.Accent))
	if providers.Count() != 1 || providers.First() != f.blue {
		t.Fatalf("ByBinding found %d nodes", providers.Count())
	}

	inside := tester.Find(Descendant(ByBinding(theme.Accent), ByType[*testbed.Swatch]()))
	if inside.Count() != 1 {
		t.Fatalf("Count = %d, want 1", inside.Count())
	}
	swatch := inside.First().(*testbed.Swatch)
	if got := state.Get[graphics.Color](swatch.Color); got != graphics.ColorBlue {
		t.Errorf("inner accent = %v, want blue", got)
	}
	if got := state.Get[graphics.Color](f.outer.Color); got != theme.DefaultLightTheme().Accent {
		t.Errorf("outer accent = %v, want light accent", got)
	}
}

func TestByPredicate(t *testing.T) {
	tester := NewTreeTesterWithT(t)
	f := newFixture()
	tester.PumpTree(f.root)

	withSources := tester.Find(ByPredicate(func(n core.Node) bool {
		return len(n.Sources()) > 0
	}))
	if withSources.Count() != 3 {
		t.Errorf("Count = %d, want 3", withSources.Count())
	}
}

func TestFinderResultEmpty(t *testing.T) {
	var r FinderResult
	if r.FirstOrNil() != nil {
		t.Error("FirstOrNil on empty result should be nil")
	}
	defer func() {
		if recover() == nil {
			t.Error("First on empty result should panic")
		}
	}()
	r.First()
}

// roundedWhenLarge binds a corner radius only under large text.
type roundedWhenLarge struct {
	core.SourceBag
}

func (r *roundedWhenLarge) Provide(env *state.Environment) []state.Binding {
	if size, _ := state.Lookup(env, theme.TextSize); size >= 20 {
		return []state.Binding{theme.CornerRadius.Bind(16)}
	}
	return nil
}

func (r *roundedWhenLarge) VisitChildren(func(core.Node) bool) {}

func TestByBindingSeesInheritedEnvironment(t *testing.T) {
	tester := NewTreeTesterWithT(t)
	large := &roundedWhenLarge{}
	tester.PumpTree(&testbed.Section{Children: []core.Node{
		&roundedWhenLarge{},
		&doubler{child: large},
	}})

	found := tester.Find(ByBinding(theme.CornerRadius))
	if found.Count() != 1 || found.First() != large {
		t.Errorf("ByBinding found %v, want only the node under doubled text", found.All())
	}
	if depth := tester.Owner().Env.Depth(); depth != 1 {
		t.Errorf("env depth after Find = %d, want 1", depth)
	}
}
