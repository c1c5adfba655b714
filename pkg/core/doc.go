// Package core drives the per-frame sync pass over a tree of nodes that own
// reactive sources.
//
// A node exposes the sources it reads and its children. Once per frame the
// SyncOwner walks the tree top-down: a node's provider bindings are pushed
// onto the environment, its sources are synced, its children are visited,
// and the bindings are popped again. Ancestors therefore resolve their
// environment-dependent values before any descendant observes them.
//
//	type counter struct {
//	    core.SourceBag
//	    count *state.Shared[int]
//	}
//
//	func newCounter() *counter {
//	    c := &counter{}
//	    c.count = core.Use(&c.SourceBag, state.NewShared(0))
//	    return c
//	}
//
//	func (c *counter) VisitChildren(func(core.Node) bool) {}
//
//	owner := core.NewSyncOwner()
//	stats := owner.Frame(root)
package core
