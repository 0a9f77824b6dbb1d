package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// colorEnabled reports whether output should use ANSI styling: only
// when stdout is a real terminal and the caller hasn't forced it off.
var colorEnabled = term.IsTerminal(int(os.Stdout.Fd()))

// styleSuccess wraps s in green when color output is enabled, matching
// the --no-color flag's contract of disabling ANSI output from the CLI
// itself.
func styleSuccess(s string) string {
	if !colorEnabled {
		return s
	}
	return "\x1b[32m" + s + "\x1b[0m"
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ptyshot",
		Short: "Capture and inspect the rendered state of terminal programs",
		Long: "ptyshot drives a terminal program inside a pseudo-terminal, feeds it a scripted\n" +
			"sequence of inputs, and rasterizes its visible screen to PNG after each step.",
		SilenceUsage: true,
	}

	var noColor bool
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if noColor {
			colorEnabled = false
		}
	}

	root.AddCommand(newCaptureCommand())
	root.AddCommand(newRunCommand())
	root.AddCommand(newMockCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newWalkCommand())
	return root
}
