package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/reactive/pkg/errors"
	"github.com/go-drift/reactive/pkg/state"
)

// FileName is the theme file LoadOptional looks for.
const FileName = "theme.yaml"

// File is the on-disk form of a theme.
//
//	version: 1.0.0
//	name: ocean
//	brightness: dark
//	values:
//	  accent: "#0077BE"
//	  corner_radius: 12
type File struct {
	Version    string               `yaml:"version"`
	Name       string               `yaml:"name,omitempty"`
	Brightness string               `yaml:"brightness,omitempty"`
	Values     map[string]yaml.Node `yaml:"values,omitempty"`
}

type decoder func(node *yaml.Node, t *ThemeData) error

var builtin = map[string]decoder{
	Accent.Name():         func(n *yaml.Node, t *ThemeData) error { return n.Decode(&t.Accent) },
	Background.Name():     func(n *yaml.Node, t *ThemeData) error { return n.Decode(&t.Background) },
	Foreground.Name():     func(n *yaml.Node, t *ThemeData) error { return n.Decode(&t.Foreground) },
	TextSize.Name():       func(n *yaml.Node, t *ThemeData) error { return n.Decode(&t.TextSize) },
	CornerRadius.Name():   func(n *yaml.Node, t *ThemeData) error { return n.Decode(&t.CornerRadius) },
	AnimationScale.Name(): func(n *yaml.Node, t *ThemeData) error { return n.Decode(&t.AnimationScale) },
}

var (
	registryMu sync.RWMutex
	registry   = map[string]decoder{}
)

// Register makes key loadable from the values section of a theme file.
// Decoded values are appended to ThemeData.Extra. Registering a name twice
// replaces the earlier key. Names of built-in values such as "accent" are
// rejected with ErrReservedKey.
func Register[T any](key *state.Key[T]) error {
	if _, ok := builtin[key.Name()]; ok {
		return &errors.StateError{
			Op:   "theme.Register",
			Kind: errors.KindConfig,
			Key:  key.Name(),
			Err:  errors.ErrReservedKey,
		}
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key.Name()] = func(n *yaml.Node, t *ThemeData) error {
		var v T
		if err := n.Decode(&v); err != nil {
			return err
		}
		t.Extra = append(t.Extra, key.Bind(v))
		return nil
	}
	return nil
}

func lookupDecoder(name string) (decoder, bool) {
	if d, ok := builtin[name]; ok {
		return d, true
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// Load parses a theme file. Values not set in the file keep the default for
// the file's brightness. Unknown value names are reported to the error
// handler and skipped.
func Load(data []byte) (*ThemeData, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}

	var t *ThemeData
	switch strings.ToLower(strings.TrimSpace(f.Brightness)) {
	case "", "light":
		t = DefaultLightTheme()
	case "dark":
		t = DefaultDarkTheme()
	default:
		return nil, &errors.StateError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Key:  "brightness",
			Err:  fmt.Errorf("unknown brightness %q", f.Brightness),
		}
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		t.Name = name
	}

	names := make([]string, 0, len(f.Values))
	for name := range f.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		decode, ok := lookupDecoder(name)
		if !ok {
			errors.Report(&errors.StateError{
				Op:   "theme.Load",
				Kind: errors.KindConfig,
				Key:  name,
				Err:  errors.ErrUnknownKey,
			})
			continue
		}
		node := f.Values[name]
		if err := decode(&node, t); err != nil {
			return nil, &errors.StateError{
				Op:   "theme.Load",
				Kind: errors.KindConfig,
				Key:  name,
				Err:  err,
			}
		}
	}
	return t, nil
}

func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) || semver.Major(v) != "v1" {
		return &errors.StateError{
			Op:   "theme.Load",
			Kind: errors.KindConfig,
			Key:  "version",
			Err:  fmt.Errorf("%w: %q", errors.ErrUnsupportedTheme, v),
		}
	}
	return nil
}

// LoadFile reads and parses the theme file at path.
func LoadFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return Load(data)
}

// LoadOptional reads theme.yaml from dir if present, and returns the default
// light theme otherwise.
func LoadOptional(dir string) (*ThemeData, error) {
	t, err := LoadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultLightTheme(), nil
		}
		return nil, err
	}
	return t, nil
}

// Marshal encodes t as a theme file. Extra bindings are not written.
func Marshal(t *ThemeData) ([]byte, error) {
	values := map[string]any{
		Accent.Name():         t.Accent,
		Background.Name():     t.Background,
		Foreground.Name():     t.Foreground,
		TextSize.Name():       t.TextSize,
		CornerRadius.Name():   t.CornerRadius,
		AnimationScale.Name(): t.AnimationScale,
	}
	return yaml.Marshal(struct {
		Version    string         `yaml:"version"`
		Name       string         `yaml:"name,omitempty"`
		Brightness string         `yaml:"brightness"`
		Values     map[string]any `yaml:"values"`
	}{"1.0.0", t.Name, t.Brightness.String(), values})
}
