package state

//go:generate go run ../../cmd/mapgen -max 6 -out map_gen.go

// derived is the loop every combinator shares: sync all inputs, apply the
// pure function, compare with the cached value.
type derived[U any] struct {
	inputs  []Syncer
	compute func() U
	equal   func(a, b U) bool
	value   U
	synced  bool
}

func (d *derived[U]) sync(env *Environment) bool {
	for _, in := range d.inputs {
		in.Sync(env)
	}
	next := d.compute()
	changed := !d.synced || d.equal == nil || !d.equal(d.value, next)
	d.value = next
	d.synced = true
	return changed
}

func equalComparable[U comparable](a, b U) bool {
	return a == b
}

// Derived is a read-only source computed from upstream sources.
type Derived[U any] struct {
	d derived[U]
}

// Derive builds a read-only combinator over arbitrary inputs. compute reads
// the inputs (which Sync has already refreshed) and returns the new value.
// equal decides whether a recomputed value counts as a change; nil means
// every sync reports a change.
//
// Most callers want the typed [Map1]..[Map6] constructors instead.
func Derive[U any](inputs []Syncer, compute func() U, equal func(a, b U) bool) *Derived[U] {
	return &Derived[U]{d: derived[U]{inputs: inputs, compute: compute, equal: equal}}
}

// Value returns the value computed by the last Sync.
func (s *Derived[U]) Value() Ref[U] {
	checkSynced("state.Derived.Value", s.d.synced)
	return Ref[U]{ptr: &s.d.value}
}

// Sync syncs every input and recomputes.
func (s *Derived[U]) Sync(env *Environment) bool {
	return s.d.sync(env)
}

// CloneReadable returns a combinator sharing the same upstream handles with
// its own cache.
func (s *Derived[U]) CloneReadable() Readable[U] {
	return &Derived[U]{d: s.d}
}

// DerivedMut is a bidirectional combinator: reads apply the forward function,
// writes apply the inverse function to the upstream sources.
type DerivedMut[U any] struct {
	d     derived[U]
	write func(U)
}

// DeriveMut is Derive with an inverse: write receives the new downstream
// value and must leave the upstream sources in a consistent state.
func DeriveMut[U any](inputs []Syncer, compute func() U, equal func(a, b U) bool, write func(U)) *DerivedMut[U] {
	return &DerivedMut[U]{
		d:     derived[U]{inputs: inputs, compute: compute, equal: equal},
		write: write,
	}
}

// Value returns the value computed by the last Sync.
func (s *DerivedMut[U]) Value() Ref[U] {
	checkSynced("state.DerivedMut.Value", s.d.synced)
	return Ref[U]{ptr: &s.d.value}
}

// Sync syncs every input and recomputes.
func (s *DerivedMut[U]) Sync(env *Environment) bool {
	return s.d.sync(env)
}

// ValueMut returns a token over a copy of the cached value. On Release the
// copy is passed through the inverse function. The cached value itself is
// only refreshed by the next Sync.
func (s *DerivedMut[U]) ValueMut() RefMut[U] {
	buf := new(U)
	*buf = s.d.value
	return RefMut[U]{ptr: buf, commit: s.write}
}

// Set passes v through the inverse function.
func (s *DerivedMut[U]) Set(v U) {
	s.write(v)
}

// CloneReadable implements Readable.
func (s *DerivedMut[U]) CloneReadable() Readable[U] {
	return &DerivedMut[U]{d: s.d, write: s.write}
}

// CloneWritable implements Writable.
func (s *DerivedMut[U]) CloneWritable() Writable[U] {
	return &DerivedMut[U]{d: s.d, write: s.write}
}
