// Command ptyshot drives a terminal program inside a pseudo-terminal,
// captures its visible state as PNG screenshots, and optionally
// describes them with a vision-language model.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
