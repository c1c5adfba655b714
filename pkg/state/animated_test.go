package state

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/reactive/pkg/animation"
	"github.com/go-drift/reactive/pkg/graphics"
	reactivetest "github.com/go-drift/reactive/pkg/testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAnimatedOnceBoundaries(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 100, 2*time.Second, animation.LinearCurve, animation.RepeatOnce)

	tests := []struct {
		advance time.Duration
		want    float64
	}{
		{0, 0},
		{time.Second, 50},
		{time.Second, 100},
		{8 * time.Second, 100},
	}
	for _, tt := range tests {
		clk.Advance(tt.advance)
		a.Sync(nil)
		if got := Get[float64](a); !approx(got, tt.want) {
			t.Errorf("at +%v value = %v, want %v", tt.advance, got, tt.want)
		}
	}
}

func TestAnimatedOnceSyncReportsUntilSettled(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 1, time.Second, nil, animation.RepeatOnce)

	if !a.Sync(nil) {
		t.Error("running animation should report a change")
	}
	clk.Advance(time.Second)
	if !a.Sync(nil) {
		t.Error("the sync that reaches the end value should report a change")
	}
	if !a.Done() {
		t.Error("expected Done after the duration elapsed")
	}
	clk.Advance(time.Second)
	if a.Sync(nil) {
		t.Error("a settled animation should report no change")
	}
}

func TestAnimatedRepeatAlternateSymmetry(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 100, 2*time.Second, animation.LinearCurve, animation.RepeatAlternate)
	start := clk.Now()

	clk.Set(start.Add(time.Second))
	a.Sync(nil)
	forward := Get[float64](a)

	clk.Set(start.Add(3 * time.Second))
	a.Sync(nil)
	reverse := Get[float64](a)

	if !approx(forward, reverse) || !approx(forward, 50) {
		t.Errorf("forward = %v, reverse = %v, want both 50", forward, reverse)
	}
	if a.Done() {
		t.Error("alternating animations are never done")
	}
}

func TestAnimatedRepeatLoop(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 10, time.Second, nil, animation.RepeatLoop)

	clk.Advance(2500 * time.Millisecond)
	if !a.Sync(nil) {
		t.Error("looping animation should always report a change")
	}
	if got := Get[float64](a); !approx(got, 5) {
		t.Errorf("value = %v, want 5", got)
	}
}

func TestAnimatedUsesPinnedFrameTime(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 100, time.Second, nil, animation.RepeatOnce)
	env := NewEnvironment()
	env.SetFrameTime(clk.Now().Add(250 * time.Millisecond))

	clk.Advance(time.Hour)
	a.Sync(env)
	if got := Get[float64](a); !approx(got, 25) {
		t.Errorf("value = %v, want 25 at the pinned frame time", got)
	}
}

func TestAnimatedDeferredStart(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := NewAnimated(AnimationConfig[float64]{
		From:     0,
		To:       1,
		Duration: time.Second,
		Lerp:     animation.LerpFloat64,
		Deferred: true,
	})
	if a.Started() {
		t.Error("deferred animation should not start at construction")
	}

	clk.Advance(10 * time.Second)
	a.Sync(nil)
	if got := Get[float64](a); got != 0 {
		t.Errorf("first sync value = %v, want 0", got)
	}
	clk.Advance(500 * time.Millisecond)
	a.Sync(nil)
	if got := Get[float64](a); !approx(got, 0.5) {
		t.Errorf("value = %v, want 0.5", got)
	}
}

func TestAnimatedRestart(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 1, time.Second, nil, animation.RepeatOnce)
	clk.Advance(2 * time.Second)
	a.Sync(nil)
	if !a.Done() {
		t.Fatal("expected Done")
	}

	a.Restart()
	if a.Done() {
		t.Error("Restart should clear Done")
	}
	if !a.Sync(nil) {
		t.Error("restarted animation should report a change")
	}
	if got := Get[float64](a); got != 0 {
		t.Errorf("value after restart = %v, want 0", got)
	}
}

func TestAnimatedCurveApplied(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 100, time.Second, animation.InQuad, animation.RepeatOnce)
	clk.Advance(500 * time.Millisecond)
	a.Sync(nil)
	if got := Get[float64](a); math.Abs(got-25) > 1e-3 {
		t.Errorf("value = %v, want 25 with InQuad", got)
	}
}

func TestAnimatedLerpable(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	color := AnimateLerpable(graphics.ColorBlack, graphics.ColorWhite, time.Second, nil, animation.RepeatOnce)
	offset := NewAnimated(AnimationConfig[graphics.Offset]{
		From:     graphics.Offset{},
		To:       graphics.Offset{X: 10, Y: 20},
		Duration: time.Second,
	})

	clk.Advance(500 * time.Millisecond)
	SyncAll(nil, color, offset)

	if got, want := Get[graphics.Color](color), graphics.RGB(128, 128, 128); got != want {
		t.Errorf("color = %v, want %v", got, want)
	}
	if got, want := Get[graphics.Offset](offset), (graphics.Offset{X: 5, Y: 10}); got != want {
		t.Errorf("offset = %+v, want %+v (method Lerp found at runtime)", got, want)
	}
}

func TestAnimatedWithoutLerpSteps(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := NewAnimated(AnimationConfig[string]{From: "off", To: "on", Duration: time.Second})

	clk.Advance(999 * time.Millisecond)
	a.Sync(nil)
	if got := Get[string](a); got != "off" {
		t.Errorf("value = %q, want off before the end", got)
	}
	clk.Advance(time.Millisecond)
	a.Sync(nil)
	if got := Get[string](a); got != "on" {
		t.Errorf("value = %q, want on at the end", got)
	}
}

func TestAnimatedZeroDuration(t *testing.T) {
	reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(3, 7, 0, nil, animation.RepeatOnce)
	a.Sync(nil)
	if got := Get[float64](a); got != 7 || !a.Done() {
		t.Errorf("value = %v, done = %v, want 7 and done", got, a.Done())
	}
}

func TestAnimatedScaledByEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		bindings []Binding
		want     float64
		done     bool
	}{
		{"unbound", nil, 50, false},
		{"half", []Binding{AnimationScale.Bind(0.5)}, 100, true},
		{"double", []Binding{AnimationScale.Bind(2)}, 25, false},
		{"off", []Binding{AnimationScale.Bind(0)}, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := reactivetest.InstallFakeClock(t)
			a := AnimateFloat64(0, 100, 2*time.Second, animation.LinearCurve, animation.RepeatOnce)
			clk.Advance(time.Second)
			a.Sync(NewEnvironment(tt.bindings...))
			if got := Get[float64](a); !approx(got, tt.want) {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
			if a.Done() != tt.done {
				t.Errorf("Done = %v, want %v", a.Done(), tt.done)
			}
		})
	}
}

func TestAnimatedInExpoReachesEnd(t *testing.T) {
	clk := reactivetest.InstallFakeClock(t)
	a := AnimateFloat64(0, 100, 2*time.Second, animation.InExpo, animation.RepeatOnce)
	clk.Advance(10 * time.Second)
	a.Sync(nil)
	if got := Get[float64](a); got != 100 || !a.Done() {
		t.Errorf("value = %v done = %v, want exactly 100 and done", got, a.Done())
	}
}
