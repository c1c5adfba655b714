// Package project locates the Go module a command runs in.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// ErrNoModule is returned by Find when no go.mod exists above the start dir.
var ErrNoModule = errors.New("not in a Go module")

// Module describes the go.mod enclosing a directory.
type Module struct {
	Dir       string // directory holding go.mod
	Path      string // module path
	GoVersion string // go directive, "" if absent
}

// Find parses the nearest go.mod at or above dir.
func Find(dir string) (*Module, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for cur := abs; ; {
		gomod := filepath.Join(cur, "go.mod")
		data, err := os.ReadFile(gomod)
		if err == nil {
			return parse(cur, gomod, data)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		up := filepath.Dir(cur)
		if up == cur {
			return nil, fmt.Errorf("%w: no go.mod above %s", ErrNoModule, abs)
		}
		cur = up
	}
}

func parse(dir, name string, data []byte) (*Module, error) {
	f, err := modfile.ParseLax(name, data, nil)
	if err != nil {
		return nil, err
	}
	if f.Module == nil || f.Module.Mod.Path == "" {
		return nil, fmt.Errorf("%s: missing module directive", name)
	}
	m := &Module{Dir: dir, Path: f.Module.Mod.Path}
	if f.Go != nil {
		m.GoVersion = f.Go.Version
	}
	return m, nil
}

// Name is the module's last path element without a major version suffix,
// lowercased. It falls back to the base of Dir, then "app".
func (m *Module) Name() string {
	if m == nil {
		return "app"
	}
	return DefaultName(m.Path, m.Dir)
}

// DefaultName derives a short name from modulePath, or from dir when the
// path is empty or malformed.
func DefaultName(modulePath, dir string) string {
	name := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok && prefix != "" {
		name = prefix[strings.LastIndexByte(prefix, '/')+1:]
	}
	if name = slug(name); name == "" {
		return "app"
	}
	return name
}

// slug lowercases s, maps '_' and '.' to '-', and drops anything else
// outside [a-z0-9-].
func slug(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '-':
			return r
		case 'A' <= r && r <= 'Z':
			return r - 'A' + 'a'
		case r == '_', r == '.':
			return '-'
		}
		return -1
	}, s)
	return strings.Trim(s, "-")
}
