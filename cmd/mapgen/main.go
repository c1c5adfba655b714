// Command mapgen generates the fixed-arity combinator constructors
// (Map1..MapN and Map1W..MapNW) in pkg/state.
//
// Usage (from pkg/state, via go generate):
//
//	go run ../../cmd/mapgen -max 6 -out map_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

// arity describes one generated constructor pair.
type arity struct {
	N int
	// Idx holds 1..N.
	Idx []int
}

func (a arity) join(format, sep string) string {
	parts := make([]string, len(a.Idx))
	for i, n := range a.Idx {
		parts[i] = strings.ReplaceAll(format, "#", fmt.Sprint(n))
	}
	return strings.Join(parts, sep)
}

// TypeParams renders "T1, T2 any".
func (a arity) TypeParams() string { return a.join("T#", ", ") + " any" }

// Types renders "T1, T2".
func (a arity) Types() string { return a.join("T#", ", ") }

// PtrTypes renders "*T1, *T2".
func (a arity) PtrTypes() string { return a.join("*T#", ", ") }

// Params renders "s1 Readable[T1], s2 Readable[T2]" for the given capability.
func (a arity) Params(capability string) string {
	return a.join("s# "+capability+"[T#]", ", ")
}

// Sources renders "s1, s2".
func (a arity) Sources() string { return a.join("s#", ", ") }

// Reads renders "Get[T1](s1), Get[T2](s2)".
func (a arity) Reads() string { return a.join("Get[T#](s#)", ", ") }

// Ptrs renders "m1.Ptr(), m2.Ptr()".
func (a arity) Ptrs() string { return a.join("m#.Ptr()", ", ") }

const src = `// Code generated by mapgen; DO NOT EDIT.

package state
{{range .}}
// Map{{.N}} derives a read-only value from {{.N}} source{{if gt .N 1}}s{{end}} with a pure function.
func Map{{.N}}[{{.TypeParams}}, U comparable]({{.Params "Readable"}}, get func({{.Types}}) U) *Derived[U] {
	return Derive([]Syncer{ {{- .Sources -}} }, func() U {
		return get({{.Reads}})
	}, equalComparable[U])
}

// Map{{.N}}W derives a writable value from {{.N}} source{{if gt .N 1}}s{{end}}. set receives the
// written value and write access to every upstream value.
func Map{{.N}}W[{{.TypeParams}}, U comparable]({{.Params "Writable"}}, get func({{.Types}}) U, set func(U, {{.PtrTypes}})) *DerivedMut[U] {
	return DeriveMut([]Syncer{ {{- .Sources -}} }, func() U {
		return get({{.Reads}})
	}, equalComparable[U], func(v U) {
{{- range .Idx}}
		m{{.}} := s{{.}}.ValueMut()
		defer m{{.}}.Release()
{{- end}}
		set(v, {{.Ptrs}})
	})
}
{{end}}`

func main() {
	maxArity := flag.Int("max", 6, "highest arity to generate")
	out := flag.String("out", "map_gen.go", "output file")
	flag.Parse()

	if err := generate(*maxArity, *out); err != nil {
		fmt.Fprintf(os.Stderr, "mapgen: %v\n", err)
		os.Exit(1)
	}
}

func generate(maxArity int, out string) error {
	if maxArity < 1 {
		return fmt.Errorf("max arity must be at least 1, got %d", maxArity)
	}
	arities := make([]arity, maxArity)
	for n := 1; n <= maxArity; n++ {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i + 1
		}
		arities[n-1] = arity{N: n, Idx: idx}
	}

	code, err := render(arities)
	if err != nil {
		return err
	}
	return os.WriteFile(out, code, 0o644)
}

func render(arities []arity) ([]byte, error) {
	tmpl, err := template.New("map").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, buf.String())
	}
	return code, nil
}
