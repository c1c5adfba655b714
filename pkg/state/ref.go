package state

// readLock releases a read borrow. Cells and *sync.RWMutex both satisfy it.
type readLock interface {
	RUnlock()
}

// writeLock releases a write borrow. Cells and *sync.RWMutex both satisfy it.
type writeLock interface {
	Unlock()
}

// Ref is a short-lived read token for a source's value.
//
// A Ref either points into the source's storage (releasing a borrow or a
// read lock on Release) or carries its own copy of the value. Callers cannot
// tell the two apart and must call Release exactly once either way.
type Ref[T any] struct {
	ptr   *T
	owned T
	lock  readLock
}

// OwnedRef returns a Ref that carries its own copy of v.
func OwnedRef[T any](v T) Ref[T] {
	return Ref[T]{owned: v}
}

// Get returns the referenced value.
func (r Ref[T]) Get() T {
	if r.ptr != nil {
		return *r.ptr
	}
	return r.owned
}

// Release ends the borrow.
func (r Ref[T]) Release() {
	if r.lock != nil {
		r.lock.RUnlock()
	}
}

// RefMut is a short-lived write token for a source's value.
//
// Mutations made through Ptr or Set land in the token's target. For cells the
// target is the cell itself; for derived sources it is a scratch copy that is
// handed to the inverse function on Release. Release must be called exactly
// once. No change notification fires: downstream sources observe the write at
// their next sync.
type RefMut[T any] struct {
	ptr    *T
	lock   writeLock
	commit func(T)
}

// Get returns the current value.
func (m RefMut[T]) Get() T {
	return *m.ptr
}

// Ptr returns a pointer to the value for in-place mutation.
// The pointer must not be retained after Release.
func (m RefMut[T]) Ptr() *T {
	return m.ptr
}

// Set replaces the value.
func (m RefMut[T]) Set(v T) {
	*m.ptr = v
}

// Release commits the write and ends the borrow.
func (m RefMut[T]) Release() {
	if m.commit != nil {
		m.commit(*m.ptr)
	}
	if m.lock != nil {
		m.lock.Unlock()
	}
}

// Get reads the current value of r.
func Get[T any](r Readable[T]) T {
	ref := r.Value()
	v := ref.Get()
	ref.Release()
	return v
}

// Update applies fn to w's value in place.
func Update[T any](w Writable[T], fn func(*T)) {
	m := w.ValueMut()
	defer m.Release()
	fn(m.Ptr())
}
