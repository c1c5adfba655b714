package core

import "github.com/go-drift/reactive/pkg/state"

// Node is one position in the tree the sync pass walks.
type Node interface {
	// Sources returns the sources this node reads, in sync order.
	Sources() []state.Syncer
	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Node) bool)
}

// Provider is implemented by nodes that bind environment values for their
// subtree. The bindings are visible to the node's own sources and to every
// descendant, and are popped when the subtree has been synced.
type Provider interface {
	Provide(env *state.Environment) []state.Binding
}

// SourceBag collects the sources a node owns. Embed it to satisfy the
// Sources method of Node.
type SourceBag struct {
	list []state.Syncer
}

// Add registers src. Sources are synced in the order they were added.
func (s *SourceBag) Add(src state.Syncer) {
	s.list = append(s.list, src)
}

// Sources returns the registered sources.
func (s *SourceBag) Sources() []state.Syncer {
	return s.list
}

// Len returns the number of registered sources.
func (s *SourceBag) Len() int {
	return len(s.list)
}

// Use registers src with bag and returns it, so a source can be created and
// registered in one expression.
//
// Example:
//
//	func newSlider(value state.Writable[float64]) *slider {
//	    s := &slider{}
//	    s.value = core.Use(&s.SourceBag, value)
//	    s.accent = core.Use(&s.SourceBag, theme.AccentColor())
//	    return s
//	}
func Use[S state.Syncer](bag *SourceBag, src S) S {
	bag.Add(src)
	return src
}
