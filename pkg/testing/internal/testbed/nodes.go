// Package testbed provides internal test nodes for the tree testing helpers.
package testbed

import (
	"fmt"
	"time"

	"github.com/go-drift/reactive/pkg/animation"
	"github.com/go-drift/reactive/pkg/core"
	"github.com/go-drift/reactive/pkg/graphics"
	"github.com/go-drift/reactive/pkg/state"
	"github.com/go-drift/reactive/pkg/theme"
)

// Counter holds a shared count and a derived label.
type Counter struct {
	core.SourceBag
	Count *state.Shared[int]
	Label *state.Derived[string]
}

// NewCounter returns a counter starting at initial.
func NewCounter(initial int) *Counter {
	c := &Counter{}
	c.Count = core.Use(&c.SourceBag, state.NewShared(initial))
	c.Label = core.Use(&c.SourceBag, state.Map1[int](c.Count, func(n int) string {
		return fmt.Sprintf("count: %d", n)
	}))
	return c
}

// Increment adds one to the count. The label follows on the next frame.
func (c *Counter) Increment() {
	state.Update[int](c.Count, func(n *int) { *n++ })
}

func (c *Counter) VisitChildren(func(core.Node) bool) {}

// Fader animates its opacity from From to To once.
type Fader struct {
	core.SourceBag
	Opacity *state.Animated[float64]
}

// NewFader returns a fader that starts at the current clock time.
func NewFader(from, to float64, duration time.Duration) *Fader {
	f := &Fader{}
	f.Opacity = core.Use(&f.SourceBag, state.AnimateFloat64(from, to, duration, animation.LinearCurve, animation.RepeatOnce))
	return f
}

func (f *Fader) VisitChildren(func(core.Node) bool) {}

// Swatch reads the ambient accent color.
type Swatch struct {
	core.SourceBag
	Color *state.KeyState[graphics.Color]
}

// NewSwatch returns a swatch bound to theme.Accent.
func NewSwatch() *Swatch {
	s := &Swatch{}
	s.Color = core.Use(&s.SourceBag, theme.AccentColor())
	return s
}

func (s *Swatch) VisitChildren(func(core.Node) bool) {}

// Loader receives a result from a background goroutine through a Synced
// cell and exposes its length.
type Loader struct {
	core.SourceBag
	Result *state.Synced[string]
	Length *state.Derived[int]
}

// NewLoader returns a loader with an empty result.
func NewLoader() *Loader {
	l := &Loader{}
	l.Result = core.Use(&l.SourceBag, state.NewSynced(""))
	l.Length = core.Use(&l.SourceBag, state.Map1[string](l.Result, func(s string) int {
		return len(s)
	}))
	return l
}

func (l *Loader) VisitChildren(func(core.Node) bool) {}

// Section binds Bindings for its children.
type Section struct {
	core.SourceBag
	Bindings []state.Binding
	Children []core.Node
}

func (s *Section) Provide(*state.Environment) []state.Binding {
	return s.Bindings
}

func (s *Section) VisitChildren(visitor func(core.Node) bool) {
	for _, c := range s.Children {
		if !visitor(c) {
			return
		}
	}
}
