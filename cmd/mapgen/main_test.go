package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderContainsEveryArity(t *testing.T) {
	code, err := render([]arity{{N: 1, Idx: []int{1}}, {N: 2, Idx: []int{1, 2}}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	src := string(code)
	for _, want := range []string{
		"// Code generated by mapgen; DO NOT EDIT.",
		"func Map1[T1 any, U comparable](s1 Readable[T1], get func(T1) U) *Derived[U]",
		"func Map2W[T1, T2 any, U comparable](s1 Writable[T1], s2 Writable[T2], get func(T1, T2) U, set func(U, *T1, *T2)) *DerivedMut[U]",
		"[]Syncer{s1, s2}",
		"set(v, m1.Ptr(), m2.Ptr())",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q", want)
		}
	}
}

func TestGenerateWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map_gen.go")
	if err := generate(3, out); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "func Map3W[") {
		t.Error("expected Map3W in output")
	}
	if strings.Contains(string(data), "func Map4[") {
		t.Error("did not expect Map4 with max=3")
	}
}

func TestGenerateRejectsZero(t *testing.T) {
	if err := generate(0, filepath.Join(t.TempDir(), "x.go")); err == nil {
		t.Error("expected error for max=0")
	}
}
