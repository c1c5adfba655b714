package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-drift/reactive/pkg/animation"
)

const barWidth = 40

func init() {
	RegisterCommand(&Command{
		Name:  "curve",
		Short: "Sample an easing curve",
		Long: `Print an easing curve sampled at evenly spaced points, with a bar
chart of the eased progress. "reactive curve list" prints the curve names.

Examples:
  reactive curve ease-in-out
  reactive curve out-bounce 20`,
		Usage: "reactive curve <name|list> [samples]",
		Run:   runCurve,
	})
}

func runCurve(args []string, stdout, _ io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("curve name is required\n\nUsage: reactive curve <name|list> [samples]")
	}
	if args[0] == "list" {
		for _, name := range animation.CurveNames() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	curve, ok := animation.CurveByName(args[0])
	if !ok {
		return fmt.Errorf("unknown curve %q (see \"reactive curve list\")", args[0])
	}
	samples := 10
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("samples must be a positive integer, got %q", args[1])
		}
		samples = n
	}

	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		v := curve(t)
		n := int(v*barWidth + 0.5)
		n = max(0, min(n, barWidth+barWidth/4))
		fmt.Fprintf(stdout, "%.2f  %7.4f  %s\n", t, v, strings.Repeat("#", n))
	}
	return nil
}
