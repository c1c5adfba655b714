package graphics

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Lerp interpolates each component toward to.
func (o Offset) Lerp(to Offset, t float64) Offset {
	return Offset{X: lerp(o.X, to.X, t), Y: lerp(o.Y, to.Y, t)}
}

// Add returns the component-wise sum.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Lerp interpolates each dimension toward to.
func (s Size) Lerp(to Size, t float64) Size {
	return Size{Width: lerp(s.Width, to.Width, t), Height: lerp(s.Height, to.Height, t)}
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// Lerp interpolates each component toward to.
func (r Radius) Lerp(to Radius, t float64) Radius {
	return Radius{X: lerp(r.X, to.X, t), Y: lerp(r.Y, to.Y, t)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
