package animation

// Lerper is implemented by values that can blend linearly toward another
// value of the same type, such as graphics.Color or graphics.Offset.
type Lerper[T any] interface {
	Lerp(to T, t float64) T
}

// LerpFunc interpolates between a and b at progress t.
type LerpFunc[T any] func(a, b T, t float64) T

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpFloat32 linearly interpolates between two float32 values.
func LerpFloat32(a, b float32, t float64) float32 {
	return a + (b-a)*float32(t)
}

// LerpInt interpolates between two ints, truncating toward zero.
func LerpInt(a, b int, t float64) int {
	return a + int(float64(b-a)*t)
}

// LerpMethod returns a LerpFunc that delegates to the value's Lerp method.
func LerpMethod[T Lerper[T]]() LerpFunc[T] {
	return func(a, b T, t float64) T {
		return a.Lerp(b, t)
	}
}
