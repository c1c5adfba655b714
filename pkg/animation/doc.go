// Package animation provides the time base, easing curves and interpolation
// helpers used by animated state sources.
//
// Animated values in this module are pull-based: a source computes its value
// from the time elapsed since it started, so nothing here ticks or schedules
// frames. The package supplies three pieces:
//
//   - [Clock]: the replaceable time source. Tests install a fake clock with
//     [SetClock] to step time deterministically.
//
//   - [Curve]: an easing function mapping progress in [0, 1] to eased progress.
//     Curves may overshoot (see [OutBack], [OutElastic]). [CubicBezier] builds
//     CSS-style curves; [FromTweenFunc] adapts any gween easing function.
//
//   - [Repeat] and [Progress]: the repeat policy and the elapsed-time to
//     progress mapping for once, repeat and ping-pong animations.
package animation
