package state

import (
	"time"

	"github.com/go-drift/reactive/pkg/animation"
)

// AnimationScale multiplies the duration of every animated source synced
// beneath its binding. 0.5 runs animations twice as fast and a scale of 0 or
// less completes them immediately. Unbound means 1.
var AnimationScale = NewKey[float64]("animation_scale")

// AnimationConfig describes an animated source.
type AnimationConfig[T any] struct {
	// From is the value at progress 0.
	From T
	// To is the value at progress 1.
	To T
	// Duration of one cycle. Non-positive durations complete immediately.
	Duration time.Duration
	// Curve eases linear progress. Nil means linear.
	Curve animation.Curve
	// Repeat selects once, loop or ping-pong behavior.
	Repeat animation.Repeat
	// Lerp blends From toward To. Nil uses T's Lerp method when T implements
	// animation.Lerper[T], and otherwise jumps to To once progress reaches 1.
	Lerp animation.LerpFunc[T]
	// Deferred starts the clock at the first Sync instead of at construction.
	Deferred bool
}

// Animated is a read-only source whose value is a pure function of the time
// elapsed since it started. Only the start instant is kept between frames, so
// the value is correct no matter how irregularly Sync is called.
//
// Time comes from the environment's frame time when one is pinned, otherwise
// from the animation clock. The duration is scaled by the innermost
// [AnimationScale] binding.
type Animated[T any] struct {
	cfg     AnimationConfig[T]
	lerp    animation.LerpFunc[T]
	start   time.Time
	started bool
	value   T
	done    bool
	synced  bool
}

// NewAnimated returns an animated source for cfg.
func NewAnimated[T any](cfg AnimationConfig[T]) *Animated[T] {
	a := &Animated[T]{cfg: cfg, lerp: cfg.Lerp, value: cfg.From}
	if a.lerp == nil {
		if _, ok := any(cfg.From).(animation.Lerper[T]); ok {
			a.lerp = func(from, to T, t float64) T {
				return any(from).(animation.Lerper[T]).Lerp(to, t)
			}
		}
	}
	if !cfg.Deferred {
		a.start = animation.Now()
		a.started = true
	}
	return a
}

// AnimateFloat64 animates a float64 from from to to.
func AnimateFloat64(from, to float64, duration time.Duration, curve animation.Curve, repeat animation.Repeat) *Animated[float64] {
	return NewAnimated(AnimationConfig[float64]{
		From:     from,
		To:       to,
		Duration: duration,
		Curve:    curve,
		Repeat:   repeat,
		Lerp:     animation.LerpFloat64,
	})
}

// AnimateLerpable animates any type that blends through its own Lerp method,
// such as graphics.Color, graphics.Offset or graphics.Size.
func AnimateLerpable[T animation.Lerper[T]](from, to T, duration time.Duration, curve animation.Curve, repeat animation.Repeat) *Animated[T] {
	return NewAnimated(AnimationConfig[T]{
		From:     from,
		To:       to,
		Duration: duration,
		Curve:    curve,
		Repeat:   repeat,
		Lerp:     animation.LerpMethod[T](),
	})
}

// Value returns the value computed by the last Sync.
func (a *Animated[T]) Value() Ref[T] {
	checkSynced("state.Animated.Value", a.synced)
	return Ref[T]{ptr: &a.value}
}

// Sync recomputes the value for the current frame time. It reports a change
// on every call while the animation runs, and false once a RepeatOnce
// animation has settled on its end value.
func (a *Animated[T]) Sync(env *Environment) bool {
	now := env.FrameTime()
	if !a.started {
		a.start = now
		a.started = true
	}
	if a.done {
		return false
	}

	progress, done := animation.Progress(now.Sub(a.start), scaledDuration(env, a.cfg.Duration), a.cfg.Repeat)
	a.value = a.at(progress)
	a.done = done
	a.synced = true
	return true
}

func scaledDuration(env *Environment, d time.Duration) time.Duration {
	scale, ok := Lookup(env, AnimationScale)
	if !ok || scale == 1 {
		return d
	}
	if scale <= 0 {
		return 0
	}
	return time.Duration(float64(d) * scale)
}

func (a *Animated[T]) at(progress float64) T {
	eased := progress
	if a.cfg.Curve != nil {
		eased = a.cfg.Curve(progress)
	}
	if a.lerp != nil {
		return a.lerp(a.cfg.From, a.cfg.To, eased)
	}
	if progress >= 1 {
		return a.cfg.To
	}
	return a.cfg.From
}

// Restart captures a new start instant from the animation clock and resumes
// a finished animation.
func (a *Animated[T]) Restart() {
	a.RestartAt(animation.Now())
}

// RestartAt restarts the animation as if it had started at t.
func (a *Animated[T]) RestartAt(t time.Time) {
	a.start = t
	a.started = true
	a.done = false
}

// Done reports whether a RepeatOnce animation has reached its end value.
// Looping animations are never done.
func (a *Animated[T]) Done() bool {
	return a.done
}

// Started reports whether the start instant has been captured.
func (a *Animated[T]) Started() bool {
	return a.started
}

// CloneReadable returns a copy with the same start instant and config.
func (a *Animated[T]) CloneReadable() Readable[T] {
	c := *a
	return &c
}
