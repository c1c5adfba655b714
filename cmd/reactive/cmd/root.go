// Package cmd implements the reactive CLI commands.
//
// A root command dispatches to subcommands registered from init functions
// (theme, curve).
package cmd

import (
	"fmt"
	"io"
	"sort"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string, stdout, stderr io.Writer) error
}

var rootCmd = &Command{
	Name:  "reactive",
	Short: "Inspect themes and easing curves",
	Long: `reactive checks and scaffolds theme files and previews the easing
curves animated sources can use.

Use "reactive <command> --help" for more information about a command.`,
	Usage: "reactive <command> [args]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute runs the CLI with the given arguments. Help and command output go
// to stdout; warnings go to stderr.
func Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printHelp(stdout)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(stdout)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "reactive version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(stdout, cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs, stdout, stderr)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s\n", name, commands[name].Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  reactive theme init           Write theme.yaml for the current module")
	fmt.Fprintln(w, "  reactive theme check ./ui     Validate ui/theme.yaml")
	fmt.Fprintln(w, "  reactive curve out-bounce     Sample an easing curve")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
