package treetest

import (
	"fmt"
	"reflect"

	"github.com/go-drift/reactive/pkg/core"
	"github.com/go-drift/reactive/pkg/state"
)

// Finder locates nodes in a tree. Nodes are compared by identity, so node
// types used with finders must be comparable; pointer nodes always are.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root core.Node) []core.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []core.Node
	finder Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists reports whether at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// FindFirst returns the first node of type T matched by finder in the
// tester's tree. Panics if there is none.
func FindFirst[T core.Node](t *TreeTester, finder Finder) T {
	n, ok := t.Find(finder).First().(T)
	if !ok {
		panic(fmt.Sprintf("first match of %s is %T, not %s", finder.Description(), t.Find(finder).First(), reflect.TypeFor[T]()))
	}
	return n
}

type typeFinder struct {
	nodeType reflect.Type
}

func (f *typeFinder) Evaluate(root core.Node) []core.Node {
	return collectMatches(root, func(n core.Node) bool {
		return reflect.TypeOf(n) == f.nodeType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.nodeType)
}

// ByType returns a finder that matches nodes of type T.
func ByType[T core.Node]() Finder {
	return &typeFinder{nodeType: reflect.TypeFor[T]()}
}

type bindingFinder struct {
	name string
}

func (f *bindingFinder) Evaluate(root core.Node) []core.Node {
	return f.evaluateIn(root, state.NewEnvironment())
}

// evaluateIn walks root the way a frame does, so each provider sees its
// ancestors' bindings on env.
func (f *bindingFinder) evaluateIn(root core.Node, env *state.Environment) []core.Node {
	var matches []core.Node
	var walk func(n core.Node)
	walk = func(n core.Node) {
		var bindings []state.Binding
		if p, ok := n.(core.Provider); ok {
			bindings = p.Provide(env)
			for _, b := range bindings {
				if b.Name() == f.name {
					matches = append(matches, n)
					break
				}
			}
		}
		env.With(bindings, func() {
			n.VisitChildren(func(child core.Node) bool {
				walk(child)
				return true
			})
		})
	}
	walk(root)
	return matches
}

func (f *bindingFinder) Description() string {
	return fmt.Sprintf("ByBinding(%q)", f.name)
}

// ByBinding returns a finder that matches providers binding key. Providers
// are asked for their bindings with their ancestors' bindings in scope; via
// TreeTester.Find the tester's environment sits underneath.
func ByBinding[T any](key *state.Key[T]) Finder {
	return &bindingFinder{name: key.Name()}
}

type predicateFinder struct {
	fn func(core.Node) bool
}

func (f *predicateFinder) Evaluate(root core.Node) []core.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return "ByPredicate(...)"
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(core.Node) bool) Finder {
	return &predicateFinder{fn: fn}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Node) []core.Node {
	var results []core.Node
	for _, ancestor := range f.of.Evaluate(root) {
		ancestor.VisitChildren(func(child core.Node) bool {
			for _, match := range f.matching.Evaluate(child) {
				if !contains(results, match) {
					results = append(results, match)
				}
			}
			return true
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying matching that
// are strict descendants of nodes matching of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func contains(nodes []core.Node, n core.Node) bool {
	for _, m := range nodes {
		if m == n {
			return true
		}
	}
	return false
}

func collectMatches(root core.Node, predicate func(core.Node) bool) []core.Node {
	var results []core.Node
	walkTree(root, func(n core.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}

// walkTree performs a depth-first pre-order traversal. The visitor returns
// false to stop the whole traversal.
func walkTree(root core.Node, visitor func(core.Node) bool) bool {
	if !visitor(root) {
		return false
	}
	cont := true
	root.VisitChildren(func(child core.Node) bool {
		cont = walkTree(child, visitor)
		return cont
	})
	return cont
}
