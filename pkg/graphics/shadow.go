package graphics

// BoxShadow describes a shadow cast by a shape. Shadows interpolate
// component-wise, so elevation changes can be animated.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Spread     float64
}

// NewBoxShadow creates a simple drop shadow with the given color and blur radius.
// Offset defaults to (0, 2) for a subtle downward shadow.
func NewBoxShadow(color Color, blurRadius float64) BoxShadow {
	return BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: 2},
		BlurRadius: blurRadius,
	}
}

// elevation levels, approximately Material Design's.
var (
	elevationOffsets = [...]float64{0, 1, 2, 4, 6, 8}
	elevationBlurs   = [...]float64{0, 3, 6, 10, 14, 18}
	elevationSpreads = [...]float64{0, 0, 0, 1, 2, 3}
)

// Elevation returns the shadow for level 0-5, clamping out-of-range levels.
// Level 0 is a transparent shadow of the same color, which lets a raise from
// the surface fade in rather than pop.
func Elevation(level int, color Color) BoxShadow {
	level = max(0, min(level, len(elevationOffsets)-1))
	if level == 0 {
		color = color.WithAlpha(0)
	}
	return BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: elevationOffsets[level]},
		BlurRadius: elevationBlurs[level],
		Spread:     elevationSpreads[level],
	}
}

// Lerp interpolates every component toward to.
func (s BoxShadow) Lerp(to BoxShadow, t float64) BoxShadow {
	return BoxShadow{
		Color:      s.Color.Lerp(to.Color, t),
		Offset:     s.Offset.Lerp(to.Offset, t),
		BlurRadius: lerp(s.BlurRadius, to.BlurRadius, t),
		Spread:     lerp(s.Spread, to.Spread, t),
	}
}
