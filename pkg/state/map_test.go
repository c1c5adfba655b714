package state

import (
	"math"
	"strings"
	"testing"
)

func TestMap1RoundTrip(t *testing.T) {
	upstream := NewShared(1.0)
	doubled := Map1W(upstream,
		func(x float64) float64 { return x * 2 },
		func(y float64, u *float64) { *u = y / 2 },
	)
	doubled.Sync(nil)
	if got := Get[float64](doubled); got != 2 {
		t.Fatalf("initial = %v, want 2", got)
	}

	doubled.Set(10)
	if got := Get[float64](upstream); got != 5 {
		t.Errorf("upstream = %v, want 5", got)
	}
	// The derived cache only refreshes at the next sync.
	if got := Get[float64](doubled); got != 2 {
		t.Errorf("before sync = %v, want stale 2", got)
	}
	if !doubled.Sync(nil) {
		t.Error("Sync after write should report a change")
	}
	if got := Get[float64](doubled); math.Abs(got-10) > 1e-9 {
		t.Errorf("after sync = %v, want 10", got)
	}
}

func TestMap1WCelsius(t *testing.T) {
	fahrenheit := NewShared(212.0)
	celsius := Map1W(fahrenheit,
		func(f float64) float64 { return (f - 32) / 1.8 },
		func(c float64, f *float64) { *f = c*1.8 + 32 },
	)
	celsius.Sync(nil)
	if got := Get[float64](celsius); math.Abs(got-100) > 1e-9 {
		t.Errorf("celsius = %v, want 100", got)
	}

	m := celsius.ValueMut()
	m.Set(0)
	m.Release()
	if got := Get[float64](fahrenheit); math.Abs(got-32) > 1e-9 {
		t.Errorf("fahrenheit = %v, want 32", got)
	}
}

func TestMapSyncIdempotence(t *testing.T) {
	name := NewShared("ada")
	upper := Map1(name, strings.ToUpper)

	if !upper.Sync(nil) {
		t.Error("first Sync should report a change")
	}
	if upper.Sync(nil) {
		t.Error("second Sync should report no change")
	}
	if got := Get[string](upper); got != "ADA" {
		t.Errorf("value = %q, want %q", got, "ADA")
	}

	// A write that leaves the derived value equal is not a change.
	name.Set("Ada")
	if upper.Sync(nil) {
		t.Error("equal recomputed value should not count as a change")
	}
}

func TestMap2AndMap3(t *testing.T) {
	w, h := NewShared(3.0), NewShared(4.0)
	area := Map2(w, h, func(a, b float64) float64 { return a * b })
	label := Map3(w, h, area, func(a, b, c float64) string {
		return strings.Repeat("#", int(c))
	})

	SyncAll(nil, area, label)
	if got := Get[float64](area); got != 12 {
		t.Errorf("area = %v, want 12", got)
	}
	if got := len(Get[string](label)); got != 12 {
		t.Errorf("len(label) = %d, want 12", got)
	}

	w.Set(1)
	label.Sync(nil)
	if got := len(Get[string](label)); got != 4 {
		t.Errorf("len(label) = %d, want 4 after upstream change", got)
	}
}

func TestMap2WWritesEveryUpstream(t *testing.T) {
	first, last := NewShared("Ada"), NewShared("Lovelace")
	full := Map2W(first, last,
		func(f, l string) string { return f + " " + l },
		func(v string, f, l *string) {
			*f, *l, _ = strings.Cut(v, " ")
		},
	)
	full.Set("Grace Hopper")
	full.Sync(nil)

	if got := Get[string](first); got != "Grace" {
		t.Errorf("first = %q", got)
	}
	if got := Get[string](last); got != "Hopper" {
		t.Errorf("last = %q", got)
	}
	if got := Get[string](full); got != "Grace Hopper" {
		t.Errorf("full = %q", got)
	}
}

func TestMap6(t *testing.T) {
	s := []*Shared[int]{NewShared(1), NewShared(2), NewShared(3), NewShared(4), NewShared(5), NewShared(6)}
	sum := Map6(s[0], s[1], s[2], s[3], s[4], s[5], func(a, b, c, d, e, f int) int {
		return a + b + c + d + e + f
	})
	sum.Sync(nil)
	if got := Get[int](sum); got != 21 {
		t.Errorf("sum = %d, want 21", got)
	}
}

func TestMapWReentrantWritePanics(t *testing.T) {
	cell := NewShared(1)
	both := Map2W(cell, cell.Alias(),
		func(a, b int) int { return a + b },
		func(v int, a, b *int) { *a, *b = v, v },
	)
	mustPanicBorrow(t, func() { both.Set(4) })

	// The first write token was released by its deferred Release.
	cell.Set(2)
	both.Sync(nil)
	if got := Get[int](both); got != 4 {
		t.Errorf("value = %d, want 4", got)
	}
}

func TestMapPanicPropagates(t *testing.T) {
	src := NewShared(0)
	inv := Map1(src, func(x int) int { return 10 / x })
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected the map function's panic to propagate")
		}
	}()
	inv.Sync(nil)
}

func TestMapCloneSharesUpstream(t *testing.T) {
	src := NewShared(2)
	sq := Map1(src, func(x int) int { return x * x })
	sq.Sync(nil)
	clone := sq.CloneReadable()

	src.Set(3)
	clone.Sync(nil)
	if got := Get(clone); got != 9 {
		t.Errorf("clone = %d, want 9", got)
	}
	if got := Get[int](sq); got != 4 {
		t.Errorf("original cache = %d, want 4 until its own Sync", got)
	}
}

func TestDeriveNonComparable(t *testing.T) {
	src := NewShared(3)
	list := Derive([]Syncer{src}, func() []int {
		return make([]int, Get[int](src))
	}, func(a, b []int) bool { return len(a) == len(b) })

	if !list.Sync(nil) || list.Sync(nil) {
		t.Error("expected change then no change")
	}
	src.Set(5)
	if !list.Sync(nil) {
		t.Error("expected change after length grew")
	}
	if got := len(Get[[]int](list)); got != 5 {
		t.Errorf("len = %d, want 5", got)
	}
}

func TestDeriveNilEqualAlwaysChanges(t *testing.T) {
	d := Derive(nil, func() int { return 1 }, nil)
	if !d.Sync(nil) || !d.Sync(nil) {
		t.Error("nil equal should report every sync as a change")
	}
}

func TestMapFloatNaNAlwaysChanges(t *testing.T) {
	src := NewShared(math.NaN())
	id := Map1(src, func(x float64) float64 { return x })
	id.Sync(nil)
	if !id.Sync(nil) {
		t.Error("NaN never equals itself, so every sync reports a change")
	}
}
