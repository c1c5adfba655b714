package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/go-drift/reactive/cmd/reactive/internal/project"
	"github.com/go-drift/reactive/pkg/errors"
	"github.com/go-drift/reactive/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Create, validate or print a theme file",
		Long: `Work with theme.yaml files.

Subcommands:
  init [dir] [--force]    Write a default theme.yaml named after the module
  check [path] [--strict] Load a theme file and report unknown keys
  show [path]             Print the values a theme binds

path may be a theme file or a directory holding theme.yaml. A directory
without theme.yaml resolves to the default light theme.`,
		Usage: "reactive theme <init|check|show> [path] [flags]",
		Run:   runTheme,
	})
}

func runTheme(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand is required\n\nUsage: reactive theme <init|check|show> [path]")
	}
	flags, rest := splitFlags(args[1:])
	path := "."
	if len(rest) > 0 {
		path = rest[0]
	}

	switch args[0] {
	case "init":
		return themeInit(path, flags["--force"], stdout)
	case "check":
		return themeCheck(path, flags["--strict"], stdout, stderr)
	case "show":
		return themeShow(path, stdout, stderr)
	default:
		return fmt.Errorf("unknown theme subcommand %q", args[0])
	}
}

func splitFlags(args []string) (map[string]bool, []string) {
	flags := make(map[string]bool)
	var rest []string
	for _, a := range args {
		if len(a) > 2 && a[:2] == "--" {
			flags[a] = true
			continue
		}
		rest = append(rest, a)
	}
	return flags, rest
}

func themeInit(dir string, force bool, stdout io.Writer) error {
	path := filepath.Join(dir, theme.FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	td := theme.DefaultLightTheme()
	td.Name = project.DefaultName("", dir)
	if mod, err := project.Find(dir); err == nil {
		td.Name = mod.Name()
	}

	data, err := theme.Marshal(td)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "wrote %s (theme %q)\n", path, td.Name)
	return nil
}

// warningHandler prints reports raised while loading a theme.
type warningHandler struct {
	out   io.Writer
	count int
}

func (h *warningHandler) HandleError(err *errors.StateError) {
	h.count++
	if err.Key != "" {
		fmt.Fprintf(h.out, "warning: %s: %v\n", err.Key, err.Err)
		return
	}
	fmt.Fprintf(h.out, "warning: %v\n", err.Err)
}

func (h *warningHandler) HandlePanic(err *errors.PanicError) {
	h.count++
	fmt.Fprintf(h.out, "panic: %v\n", err)
}

// load resolves path to a theme, routing reports to stderr.
func load(path string, stderr io.Writer) (*theme.ThemeData, *warningHandler, error) {
	h := &warningHandler{out: stderr}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	info, err := os.Stat(path)
	if err != nil {
		return nil, h, err
	}
	if info.IsDir() {
		td, err := theme.LoadOptional(path)
		return td, h, err
	}
	td, err := theme.LoadFile(path)
	return td, h, err
}

func themeCheck(path string, strict bool, stdout, stderr io.Writer) error {
	td, h, err := load(path, stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "ok: %s (%s), %d warning(s)\n", td.Name, td.Brightness, h.count)
	if strict && h.count > 0 {
		return fmt.Errorf("%d warning(s) in strict mode", h.count)
	}
	return nil
}

func themeShow(path string, stdout, stderr io.Writer) error {
	td, _, err := load(path, stderr)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", td.Name)
	for _, b := range td.Bindings() {
		fmt.Fprintf(w, "%s\t%v\n", b.Name(), b.Value())
	}
	return w.Flush()
}
