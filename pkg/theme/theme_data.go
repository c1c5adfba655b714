// Package theme supplies the standard environment keys for themed values and
// loads theme files that bind them.
//
// A theme is pushed onto the environment as one frame; widgets read it
// through environment-sourced state:
//
//	env.Push(theme.DefaultDarkTheme().Bindings()...)
//	accent := state.NewKeyState(theme.Accent, theme.DefaultLightTheme().Accent)
package theme

import (
	"golang.org/x/image/colornames"

	"github.com/go-drift/reactive/pkg/graphics"
	"github.com/go-drift/reactive/pkg/state"
)

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme with dark text.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme with light text.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// Standard theme keys.
var (
	Accent          = state.NewKey[graphics.Color]("accent")
	Background      = state.NewKey[graphics.Color]("background")
	Foreground      = state.NewKey[graphics.Color]("foreground")
	TextSize        = state.NewKey[float64]("text_size")
	CornerRadius    = state.NewKey[float64]("corner_radius")
	AnimationScale  = state.AnimationScale
	ThemeBrightness = state.NewKey[Brightness]("brightness")
)

// ThemeData contains the values a theme binds.
type ThemeData struct {
	Name       string
	Brightness Brightness

	Accent     graphics.Color
	Background graphics.Color
	Foreground graphics.Color

	TextSize       float64
	CornerRadius   float64
	AnimationScale float64

	// Extra holds bindings for keys registered with Register.
	Extra []state.Binding
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		Name:           "light",
		Brightness:     BrightnessLight,
		Accent:         graphics.FromStdColor(colornames.Dodgerblue),
		Background:     graphics.FromStdColor(colornames.Whitesmoke),
		Foreground:     graphics.FromStdColor(colornames.Darkslategray),
		TextSize:       14,
		CornerRadius:   8,
		AnimationScale: 1,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		Name:           "dark",
		Brightness:     BrightnessDark,
		Accent:         graphics.FromStdColor(colornames.Deepskyblue),
		Background:     graphics.FromStdColor(colornames.Black),
		Foreground:     graphics.FromStdColor(colornames.Gainsboro),
		TextSize:       14,
		CornerRadius:   8,
		AnimationScale: 1,
	}
}

// Copy returns a copy that can be modified without affecting t.
func (t *ThemeData) Copy() *ThemeData {
	c := *t
	c.Extra = append([]state.Binding(nil), t.Extra...)
	return &c
}

// Bindings returns one binding per theme key, ready to push as a frame.
func (t *ThemeData) Bindings() []state.Binding {
	b := []state.Binding{
		ThemeBrightness.Bind(t.Brightness),
		Accent.Bind(t.Accent),
		Background.Bind(t.Background),
		Foreground.Bind(t.Foreground),
		TextSize.Bind(t.TextSize),
		CornerRadius.Bind(t.CornerRadius),
		AnimationScale.Bind(t.AnimationScale),
	}
	return append(b, t.Extra...)
}

// AccentColor returns a source for the ambient accent color, falling back to
// the light theme's accent.
func AccentColor() *state.KeyState[graphics.Color] {
	return state.NewKeyState(Accent, DefaultLightTheme().Accent)
}

// ScaledTextSize returns a source for the ambient text size multiplied by
// the given factor, so headings track the theme's base size.
func ScaledTextSize(factor float64) *state.EnvState[float64] {
	def := DefaultLightTheme().TextSize
	return state.NewEnvState(func(env *state.Environment) float64 {
		size, ok := state.Lookup(env, TextSize)
		if !ok {
			size = def
		}
		return size * factor
	})
}
