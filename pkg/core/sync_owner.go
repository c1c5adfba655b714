package core

import (
	"time"

	"github.com/go-drift/reactive/pkg/animation"
	"github.com/go-drift/reactive/pkg/state"
)

// FrameStats summarizes one sync pass.
type FrameStats struct {
	// Time is the frame time sources observed.
	Time time.Time
	// Nodes is the number of nodes visited.
	Nodes int
	// Sources is the number of sources synced.
	Sources int
	// Changed is the number of sources whose Sync reported a change.
	// Sources implementing state.AlwaysChanged are counted in Volatile
	// instead and never make a node dirty.
	Changed int
	// Volatile is the number of always-changed sources synced.
	Volatile int
	// Dirty lists nodes with at least one changed source, parents first.
	Dirty []Node
}

// NeedsRebuild reports whether any source changed during the pass.
func (s FrameStats) NeedsRebuild() bool {
	return len(s.Dirty) > 0
}

// SyncOwner runs the per-frame sync pass.
//
// SyncOwner is not safe for concurrent use. Frames must run on the goroutine
// that owns the tree.
type SyncOwner struct {
	// Env is the environment the pass pushes bindings onto. A nil Env is
	// replaced with an empty environment on the first frame.
	Env *state.Environment

	// OnDirty is called for each node with a changed source, after that
	// node's sources have been synced and before its children are visited.
	OnDirty func(Node)
}

// NewSyncOwner returns a SyncOwner whose environment holds the given
// root bindings.
func NewSyncOwner(bindings ...state.Binding) *SyncOwner {
	return &SyncOwner{Env: state.NewEnvironment(bindings...)}
}

// Frame stamps the environment with the current clock time and syncs the
// tree rooted at root. A panic raised by a source propagates after the
// bindings pushed so far have been popped.
func (o *SyncOwner) Frame(root Node) FrameStats {
	return o.FrameAt(root, animation.Now())
}

// FrameAt is like Frame with an explicit frame time.
func (o *SyncOwner) FrameAt(root Node, now time.Time) FrameStats {
	if o.Env == nil {
		o.Env = state.NewEnvironment()
	}
	o.Env.SetFrameTime(now)
	stats := FrameStats{Time: now}
	if root != nil {
		o.visit(root, &stats)
	}
	return stats
}

func (o *SyncOwner) visit(n Node, stats *FrameStats) {
	var bindings []state.Binding
	if p, ok := n.(Provider); ok {
		bindings = p.Provide(o.Env)
	}
	o.Env.With(bindings, func() {
		stats.Nodes++
		dirty := false
		for _, src := range n.Sources() {
			stats.Sources++
			if !src.Sync(o.Env) {
				continue
			}
			if ac, ok := src.(state.AlwaysChanged); ok && ac.AlwaysChanged() {
				stats.Volatile++
				continue
			}
			stats.Changed++
			dirty = true
		}
		if dirty {
			stats.Dirty = append(stats.Dirty, n)
			if o.OnDirty != nil {
				o.OnDirty(n)
			}
		}
		n.VisitChildren(func(child Node) bool {
			o.visit(child, stats)
			return true
		})
	})
}
