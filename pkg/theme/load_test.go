package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/reactive/pkg/errors"
	"github.com/go-drift/reactive/pkg/graphics"
	"github.com/go-drift/reactive/pkg/state"
	reactivetest "github.com/go-drift/reactive/pkg/testing"
)

func TestLoad(t *testing.T) {
	data := []byte(`
version: 1.2.0
name: ocean
brightness: dark
values:
  accent: "#0077BE"
  corner_radius: 12
`)
	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultDarkTheme()
	want.Name = "ocean"
	want.Accent = graphics.RGB(0x00, 0x77, 0xBE)
	want.CornerRadius = 12
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.0.0", true},
		{"v1.4.2", true},
		{"1.0", true},
		{"2.0.0", false},
		{"v0.9.0", false},
		{"", false},
		{"latest", false},
	}
	for _, tt := range tests {
		_, err := Load([]byte("version: " + tt.version + "\n"))
		if tt.ok {
			if err != nil {
				t.Errorf("version %q: unexpected error %v", tt.version, err)
			}
			continue
		}
		if !errors.Is(err, errors.ErrUnsupportedTheme) {
			t.Errorf("version %q: error = %v, want ErrUnsupportedTheme", tt.version, err)
		}
	}
}

func TestLoadUnknownKey(t *testing.T) {
	rec := reactivetest.CaptureReports(t)
	got, err := Load([]byte("version: 1.0.0\nvalues:\n  glow: 3\n  text_size: 18\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.TextSize != 18 {
		t.Errorf("TextSize = %v, want 18", got.TextSize)
	}
	if n := rec.Count(errors.KindConfig); n != 1 {
		t.Fatalf("config reports = %d, want 1", n)
	}
	if rec.Errors()[0].Key != "glow" {
		t.Errorf("reported key = %q, want glow", rec.Errors()[0].Key)
	}
}

func TestLoadBadValue(t *testing.T) {
	_, err := Load([]byte("version: 1.0.0\nvalues:\n  accent: notacolor\n"))
	var se *errors.StateError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *StateError", err)
	}
	if se.Kind != errors.KindConfig || se.Key != "accent" {
		t.Errorf("got kind=%v key=%q", se.Kind, se.Key)
	}
}

func TestLoadBadBrightness(t *testing.T) {
	if _, err := Load([]byte("version: 1.0.0\nbrightness: dim\n")); err == nil {
		t.Fatal("expected error for unknown brightness")
	}
}

func TestRegister(t *testing.T) {
	spacing := state.NewKey[float64]("test_spacing")
	if err := Register(spacing); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := Load([]byte("version: 1.0.0\nvalues:\n  test_spacing: 6\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	env := state.NewEnvironment(got.Bindings()...)
	v, ok := state.Lookup(env, spacing)
	if !ok || v != 6 {
		t.Errorf("Lookup = %v, %v; want 6, true", v, ok)
	}
}

func TestRegisterRejectsBuiltinName(t *testing.T) {
	err := Register(state.NewKey[string]("accent"))
	var se *errors.StateError
	if !errors.As(err, &se) || se.Kind != errors.KindConfig || !errors.Is(err, errors.ErrReservedKey) {
		t.Fatalf("Register(accent) = %v, want KindConfig ErrReservedKey", err)
	}

	got, err := Load([]byte("version: 1.0.0\nvalues:\n  accent: \"#112233\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Extra) != 0 {
		t.Errorf("Extra = %v, want none", got.Extra)
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	got, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional missing: %v", err)
	}
	if diff := cmp.Diff(DefaultLightTheme(), got); diff != "" {
		t.Errorf("missing file should yield light theme:\n%s", diff)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("version: 1.0.0\nname: mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if got.Name != "mine" {
		t.Errorf("Name = %q, want mine", got.Name)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultDarkTheme()
	want.Name = "night"
	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
