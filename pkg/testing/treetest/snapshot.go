package treetest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/reactive/pkg/core"
	"github.com/go-drift/reactive/pkg/state"
)

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "REACTIVE_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the node tree and the values its sources hold after a
// frame.
type Snapshot struct {
	Frame FrameInfo     `json:"frame"`
	Tree  *NodeSnapshot `json:"tree,omitempty"`
}

// FrameInfo is the serialized form of core.FrameStats.
type FrameInfo struct {
	Nodes   int `json:"nodes"`
	Sources int `json:"sources"`
	Changed int `json:"changed"`
}

// NodeSnapshot represents a node in the serialized tree.
type NodeSnapshot struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Bindings map[string]any   `json:"bindings,omitempty"`
	Sources  []SourceSnapshot `json:"sources,omitempty"`
	Children []*NodeSnapshot  `json:"children,omitempty"`
}

// SourceSnapshot holds a source's type and current value. Value is omitted
// for sources without a Value method.
type SourceSnapshot struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

// CaptureSnapshot captures the mounted tree and the last frame's stats.
// Call it after a Pump so every source has been synced. Providers see the
// owner's environment with their ancestors' bindings pushed, as in a frame.
func (t *TreeTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Frame: FrameInfo{
		Nodes:   t.last.Nodes,
		Sources: t.last.Sources,
		Changed: t.last.Changed,
	}}
	if t.root != nil {
		snap.Tree = captureNode(t.root, t.environment(), &typeCounter{})
	}
	return snap
}

// MatchesFile compares this snapshot with the golden file at path and
// reports any difference through t. With REACTIVE_UPDATE_SNAPSHOTS=1 in the
// environment the golden file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	golden, err := loadSnapshot(path)
	switch {
	case os.IsNotExist(err):
		t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
	case err != nil:
		t.Fatalf("failed to load snapshot: %v", err)
	default:
		if diff := s.Diff(golden); diff != "" {
			t.Errorf("snapshot mismatch: %s (-golden +current):\n%s\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
		}
	}
}

// UpdateFile writes the snapshot to path, creating parent directories.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff compares the JSON forms of other and s, so a snapshot read back from
// disk equals the one it was written from. It returns "" when they match.
func (s *Snapshot) Diff(other *Snapshot) string {
	return cmp.Diff(jsonTree(other), jsonTree(s))
}

// jsonTree round-trips s through JSON into plain maps and slices.
func jsonTree(s *Snapshot) any {
	data, err := json.Marshal(s)
	if err != nil {
		return err.Error()
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err.Error()
	}
	return v
}

// typeCounter assigns stable IDs like "Counter#0", "Counter#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(n core.Node, env *state.Environment, counter *typeCounter) *NodeSnapshot {
	typeName := typeNameOf(n)
	node := &NodeSnapshot{
		ID:   counter.next(typeName),
		Type: typeName,
	}

	var bindings []state.Binding
	if p, ok := n.(core.Provider); ok {
		bindings = p.Provide(env)
		for _, b := range bindings {
			if node.Bindings == nil {
				node.Bindings = make(map[string]any)
			}
			node.Bindings[b.Name()] = serializeValue(reflect.ValueOf(b.Value()))
		}
	}

	for _, src := range n.Sources() {
		node.Sources = append(node.Sources, SourceSnapshot{
			Type:  typeNameOf(src),
			Value: sourceValue(src),
		})
	}

	env.With(bindings, func() {
		n.VisitChildren(func(child core.Node) bool {
			node.Children = append(node.Children, captureNode(child, env, counter))
			return true
		})
	})
	return node
}

func typeNameOf(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	// Strip package paths from type arguments.
	i := strings.IndexByte(name, '[')
	if i < 0 || !strings.HasSuffix(name, "]") {
		return name
	}
	args := strings.Split(name[i+1:len(name)-1], ",")
	for k, a := range args {
		if j := strings.LastIndexByte(a, '.'); j >= 0 {
			args[k] = a[j+1:]
		}
	}
	return name[:i+1] + strings.Join(args, ",") + "]"
}

// sourceValue reads a source through its Value method and releases the
// borrow again.
func sourceValue(src state.Syncer) any {
	m := reflect.ValueOf(src).MethodByName("Value")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return nil
	}
	ref := m.Call(nil)[0]
	if release := ref.MethodByName("Release"); release.IsValid() {
		defer release.Call(nil)
	}
	get := ref.MethodByName("Get")
	if !get.IsValid() {
		return nil
	}
	return serializeValue(get.Call(nil)[0])
}

func serializeValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Struct:
		return serializeStruct(v)
	default:
		if v.CanInterface() {
			return fmt.Sprintf("%v", v.Interface())
		}
		return nil
	}
}

// serializeStruct collects exported fields into a map.
func serializeStruct(v reflect.Value) any {
	t := v.Type()
	m := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if val := serializeValue(v.Field(i)); val != nil {
			m[f.Name] = val
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
