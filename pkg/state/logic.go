package state

// Not derives the negation of src.
func Not(src Readable[bool]) *Derived[bool] {
	return Map1(src, func(b bool) bool { return !b })
}

// Junction is the logical AND or OR of two boolean sources.
//
// Sync short-circuits: once the left operand decides the result, the right
// operand is not synced at all. The skipped source keeps its previous cache
// until a later sync needs it, which is harmless for side-effect-free sources
// but means its own Sync bookkeeping lags behind.
type Junction struct {
	left, right Readable[bool]
	// decisive is the left value that settles the result: false for AND,
	// true for OR.
	decisive bool
	value    bool
	synced   bool
}

// And returns a source that is true when both a and b are.
func And(a, b Readable[bool]) *Junction {
	return &Junction{left: a, right: b, decisive: false}
}

// Or returns a source that is true when either a or b is.
func Or(a, b Readable[bool]) *Junction {
	return &Junction{left: a, right: b, decisive: true}
}

// Value returns the result of the last Sync.
func (j *Junction) Value() Ref[bool] {
	checkSynced("state.Junction.Value", j.synced)
	return Ref[bool]{ptr: &j.value}
}

// Sync syncs the left operand and, only if needed, the right one.
func (j *Junction) Sync(env *Environment) bool {
	j.left.Sync(env)
	v := Get(j.left)
	if v != j.decisive {
		j.right.Sync(env)
		v = Get(j.right)
	}
	changed := !j.synced || v != j.value
	j.value = v
	j.synced = true
	return changed
}

// CloneReadable implements Readable.
func (j *Junction) CloneReadable() Readable[bool] {
	c := *j
	return &c
}

// Selected picks one of two sources based on a condition.
type Selected[T comparable] struct {
	cond            Readable[bool]
	ifTrue, ifFalse Readable[T]
	value           T
	synced          bool
}

// Select returns a source holding ifTrue's value while cond is true and
// ifFalse's otherwise. Only the chosen branch is synced.
func Select[T comparable](cond Readable[bool], ifTrue, ifFalse Readable[T]) *Selected[T] {
	return &Selected[T]{cond: cond, ifTrue: ifTrue, ifFalse: ifFalse}
}

// Value returns the result of the last Sync.
func (s *Selected[T]) Value() Ref[T] {
	checkSynced("state.Selected.Value", s.synced)
	return Ref[T]{ptr: &s.value}
}

// Sync syncs the condition and the chosen branch.
func (s *Selected[T]) Sync(env *Environment) bool {
	s.cond.Sync(env)
	branch := s.ifFalse
	if Get(s.cond) {
		branch = s.ifTrue
	}
	branch.Sync(env)
	v := Get(branch)
	changed := !s.synced || v != s.value
	s.value = v
	s.synced = true
	return changed
}

// CloneReadable implements Readable.
func (s *Selected[T]) CloneReadable() Readable[T] {
	c := *s
	return &c
}
