package state

// LensState projects a part of a writable source, such as one struct field.
// Reads and writes go straight through to the source, so no inverse function
// is needed.
type LensState[S, F any] struct {
	src   Writable[S]
	focus func(*S) *F
}

// Lens returns a writable view of the part of src selected by focus.
// focus must return a pointer into the value it is given.
func Lens[S, F any](src Writable[S], focus func(*S) *F) *LensState[S, F] {
	return &LensState[S, F]{src: src, focus: focus}
}

// Value borrows the source and returns the focused part. The source stays
// borrowed until the returned token is released.
func (l *LensState[S, F]) Value() Ref[F] {
	r := l.src.Value()
	if r.ptr == nil {
		whole := r.owned
		return Ref[F]{owned: *l.focus(&whole)}
	}
	return Ref[F]{ptr: l.focus(r.ptr), lock: r.lock}
}

// ValueMut borrows the source for writing; the source's own write token is
// released, and committed, when the returned token is released.
func (l *LensState[S, F]) ValueMut() RefMut[F] {
	m := l.src.ValueMut()
	return RefMut[F]{
		ptr:    l.focus(m.Ptr()),
		commit: func(F) { m.Release() },
	}
}

// Set replaces the focused part.
func (l *LensState[S, F]) Set(v F) {
	m := l.src.ValueMut()
	defer m.Release()
	*l.focus(m.Ptr()) = v
}

// Sync syncs the source. It reports a change whenever the source changed,
// even if the focused part did not.
func (l *LensState[S, F]) Sync(env *Environment) bool {
	return l.src.Sync(env)
}

// CloneReadable implements Readable.
func (l *LensState[S, F]) CloneReadable() Readable[F] {
	return &LensState[S, F]{src: l.src, focus: l.focus}
}

// CloneWritable implements Writable.
func (l *LensState[S, F]) CloneWritable() Writable[F] {
	return &LensState[S, F]{src: l.src, focus: l.focus}
}
