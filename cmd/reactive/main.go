// Command reactive inspects theme files and easing curves for reactive apps.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/reactive/cmd/reactive/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
