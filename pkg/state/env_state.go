package state

// KeyState is a read-only source resolving a key in the environment on every
// sync, falling back to a default when the key is absent.
type KeyState[T comparable] struct {
	key    *Key[T]
	def    T
	value  T
	synced bool
}

// NewKeyState returns a source for key with fallback def.
func NewKeyState[T comparable](key *Key[T], def T) *KeyState[T] {
	return &KeyState[T]{key: key, def: def, value: def}
}

// Key returns the looked-up key.
func (s *KeyState[T]) Key() *Key[T] {
	return s.key
}

// Value returns the value resolved by the last Sync.
func (s *KeyState[T]) Value() Ref[T] {
	checkSynced("state.KeyState.Value", s.synced)
	return Ref[T]{ptr: &s.value}
}

// Sync re-resolves the key. The result is never memoized across calls
// because different subtrees shadow keys differently.
func (s *KeyState[T]) Sync(env *Environment) bool {
	v, ok := Lookup(env, s.key)
	if !ok {
		v = s.def
	}
	changed := !s.synced || v != s.value
	s.value = v
	s.synced = true
	return changed
}

// CloneReadable implements Readable.
func (s *KeyState[T]) CloneReadable() Readable[T] {
	c := *s
	return &c
}

// EnvState is a read-only source computed from the whole environment.
type EnvState[T comparable] struct {
	fn     func(env *Environment) T
	value  T
	synced bool
}

// NewEnvState returns a source whose value is fn(env) at each sync.
// fn must tolerate a nil environment.
func NewEnvState[T comparable](fn func(env *Environment) T) *EnvState[T] {
	return &EnvState[T]{fn: fn}
}

// Value returns the value computed by the last Sync.
func (s *EnvState[T]) Value() Ref[T] {
	checkSynced("state.EnvState.Value", s.synced)
	return Ref[T]{ptr: &s.value}
}

// Sync recomputes fn(env).
func (s *EnvState[T]) Sync(env *Environment) bool {
	v := s.fn(env)
	changed := !s.synced || v != s.value
	s.value = v
	s.synced = true
	return changed
}

// CloneReadable implements Readable.
func (s *EnvState[T]) CloneReadable() Readable[T] {
	c := *s
	return &c
}

// KeyableState resolves a key that is itself chosen by another source, for
// example a theme slot picked by a toggle.
type KeyableState[T comparable] struct {
	key    Readable[*Key[T]]
	def    T
	value  T
	synced bool
}

// NewKeyableState returns a source that syncs key, then resolves whichever
// key it holds. A nil key resolves to def.
func NewKeyableState[T comparable](key Readable[*Key[T]], def T) *KeyableState[T] {
	return &KeyableState[T]{key: key, def: def, value: def}
}

// Value returns the value resolved by the last Sync.
func (s *KeyableState[T]) Value() Ref[T] {
	checkSynced("state.KeyableState.Value", s.synced)
	return Ref[T]{ptr: &s.value}
}

// Sync syncs the key source and re-resolves.
func (s *KeyableState[T]) Sync(env *Environment) bool {
	s.key.Sync(env)
	v := s.def
	if k := Get(s.key); k != nil {
		if found, ok := Lookup(env, k); ok {
			v = found
		}
	}
	changed := !s.synced || v != s.value
	s.value = v
	s.synced = true
	return changed
}

// CloneReadable implements Readable. The clone shares the key source.
func (s *KeyableState[T]) CloneReadable() Readable[T] {
	c := *s
	return &c
}
