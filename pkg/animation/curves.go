package animation

import (
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve transforms linear animation progress into natural-feeling motion.
//
// A curve takes t in [0, 1] and returns the eased progress. Curves must map
// 0 to 0 and 1 to 1 but may leave [0, 1] in between.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier(), or
// [FromTweenFunc] to reuse a gween easing function.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Use for elements that stay on screen but change state.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// FromTweenFunc adapts a gween easing function, which maps
// (time, begin, change, duration) to a value, into a unit Curve. The
// endpoints are pinned to exactly 0 and 1; some gween functions (InExpo)
// stop short of them.
func FromTweenFunc(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Curves backed by the gween easing catalog.
var (
	InQuad      = FromTweenFunc(ease.InQuad)
	OutQuad     = FromTweenFunc(ease.OutQuad)
	InOutQuad   = FromTweenFunc(ease.InOutQuad)
	InCubic     = FromTweenFunc(ease.InCubic)
	OutCubic    = FromTweenFunc(ease.OutCubic)
	InOutCubic  = FromTweenFunc(ease.InOutCubic)
	InSine      = FromTweenFunc(ease.InSine)
	OutSine     = FromTweenFunc(ease.OutSine)
	InOutSine   = FromTweenFunc(ease.InOutSine)
	InExpo      = FromTweenFunc(ease.InExpo)
	OutExpo     = FromTweenFunc(ease.OutExpo)
	InBack      = FromTweenFunc(ease.InBack)
	OutBack     = FromTweenFunc(ease.OutBack)
	InElastic   = FromTweenFunc(ease.InElastic)
	OutElastic  = FromTweenFunc(ease.OutElastic)
	InBounce    = FromTweenFunc(ease.InBounce)
	OutBounce   = FromTweenFunc(ease.OutBounce)
	InOutBounce = FromTweenFunc(ease.InOutBounce)
)

// Reverse returns a curve that plays c backwards: Reverse(c)(t) = 1 - c(1 - t).
func Reverse(c Curve) Curve {
	return func(t float64) float64 {
		return 1 - c(1-t)
	}
}

// Interval returns a curve that stays at 0 until begin, runs c between begin
// and end, and stays at 1 afterwards.
func Interval(begin, end float64, c Curve) Curve {
	return func(t float64) float64 {
		if t <= begin {
			return 0
		}
		if t >= end || end <= begin {
			return 1
		}
		return c((t - begin) / (end - begin))
	}
}

var namedCurves = map[string]Curve{
	"linear":        LinearCurve,
	"ease":          Ease,
	"ease-in":       EaseIn,
	"ease-out":      EaseOut,
	"ease-in-out":   EaseInOut,
	"in-quad":       InQuad,
	"out-quad":      OutQuad,
	"in-out-quad":   InOutQuad,
	"in-cubic":      InCubic,
	"out-cubic":     OutCubic,
	"in-out-cubic":  InOutCubic,
	"in-sine":       InSine,
	"out-sine":      OutSine,
	"in-out-sine":   InOutSine,
	"in-expo":       InExpo,
	"out-expo":      OutExpo,
	"in-back":       InBack,
	"out-back":      OutBack,
	"in-elastic":    InElastic,
	"out-elastic":   OutElastic,
	"in-bounce":     InBounce,
	"out-bounce":    OutBounce,
	"in-out-bounce": InOutBounce,
}

// CurveByName returns the named curve, such as "ease-in-out" or
// "out-bounce".
func CurveByName(name string) (Curve, bool) {
	c, ok := namedCurves[name]
	return c, ok
}

// CurveNames returns the names CurveByName accepts, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
