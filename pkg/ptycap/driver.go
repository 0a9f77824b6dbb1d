// Package ptycap is the PTY Capture Driver: it spawns a child process
// attached to a pseudo-terminal, drives it with a scripted input
// sequence, and returns a rasterized PNG snapshot after each step. It
// is the only package in this module that touches a PTY or a child
// process; pkg/vtterm and pkg/rasterize are pure and never imported for
// their side effects here.
package ptycap

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"

	"github.com/ptyshot/ptyshot/pkg/rasterize"
	"github.com/ptyshot/ptyshot/pkg/vtterm"
)

// Capture is one rasterized snapshot produced during a Run: the step
// index (0 for the initial capture), the input label that produced it
// (empty for step 0), and the PNG-encoded image.
type Capture struct {
	Step   int
	Input  string
	PNG    []byte
	Width  int
	Height int
	// Text is the plain-text dump of the grid at this capture point. It
	// is always populated, cheaply, so callers such as the CLI's
	// PTYSHOT_DUMP_TEXT support can print it without re-deriving it
	// from the PNG.
	Text string
}

// Options configures one Run invocation.
type Options struct {
	Binary string
	Args   []string
	Inputs []string
	Size   Size
	Delay  time.Duration
}

// Run spawns Binary under a PTY sized to Options.Size, feeds each of
// Options.Inputs in order with the settling policy from spec.md §4.3,
// and returns one capture per input plus the initial capture — so
// len(result) == len(Options.Inputs)+1. Setup failures (PTY open,
// spawn, handle cloning) are returned immediately with no captures.
func Run(opts Options) ([]Capture, error) {
	seqs := make([][]byte, len(opts.Inputs))
	for i, input := range opts.Inputs {
		seqs[i] = TranslateInput(input)
	}
	captures, err := runSequences(opts, seqs)
	if err != nil {
		return captures, err
	}
	for i, input := range opts.Inputs {
		captures[i+1].Input = input
	}
	return captures, nil
}

// RunRaw is the same driver as Run but takes already-resolved byte
// sequences instead of symbolic input names, for callers such as
// pkg/statewalk that build their own input sequences (e.g. flattening
// several named states' inputs into one continuous session).
func RunRaw(opts Options, sequences [][]byte) ([]Capture, error) {
	return runSequences(opts, sequences)
}

func runSequences(opts Options, sequences [][]byte) ([]Capture, error) {
	size := opts.Size
	if size.Cols == 0 || size.Rows == 0 {
		size = DefaultSize()
	}

	term := vtterm.New(size.Cols, size.Rows)

	program := resolveBinaryPath(opts.Binary)
	cmd := exec.Command(program, opts.Args...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		fmt.Sprintf("COLUMNS=%d", size.Cols),
		fmt.Sprintf("LINES=%d", size.Rows),
	)

	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(size.Rows),
		Cols: uint16(size.Cols),
	})
	if err != nil {
		return nil, fmt.Errorf("ptycap: failed to spawn %q under a PTY: %w", opts.Binary, err)
	}
	defer master.Close()

	ch := startReader(master)

	captures := make([]Capture, 0, len(sequences)+1)

	drainUntilQuiet(ch, term, QuietWindow, MaxInitialRenderWait)
	captures = append(captures, renderCapture(term, 0, ""))

	for i, seq := range sequences {
		if opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		if _, err := master.Write(seq); err != nil {
			return captures, fmt.Errorf("ptycap: failed to send input at step %d: %w", i+1, err)
		}

		drainUntilQuiet(ch, term, QuietWindow, MaxInputRenderWait)
		captures = append(captures, renderCapture(term, i+1, ""))
	}

	master.Close()
	waitForExit(cmd, ch, term, ProcessDrainTimeout)

	return captures, nil
}

func renderCapture(term *vtterm.Terminal, step int, label string) Capture {
	img := rasterize.Rasterize(term.Grid())
	png, err := rasterize.EncodePNG(img)
	if err != nil {
		// An encoding failure is not returned to the caller: the capture
		// is kept with a nil PNG (zero-length image) and the rest of the
		// run continues.
		png = nil
	}
	return Capture{Step: step, Input: label, PNG: png, Width: img.Width, Height: img.Height, Text: term.DumpText()}
}

// waitForExit polls the child for exit while continuing to drain the
// reader, so any trailing output before the process dies is still
// folded into the emulator (though no further capture is emitted for
// it — spec.md's contract only captures per input plus the initial
// state). If the child is still alive at the deadline it is killed and
// reaped.
func waitForExit(cmd *exec.Cmd, ch <-chan chunk, term *vtterm.Terminal, maxWait time.Duration) {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	deadline := time.After(maxWait)
	for {
		select {
		case <-done:
			drainRemaining(ch, term)
			return
		case <-deadline:
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
			<-done
			drainRemaining(ch, term)
			return
		case c, ok := <-ch:
			if !ok {
				continue
			}
			feedAll(term, c.data)
		}
	}
}

func drainRemaining(ch <-chan chunk, term *vtterm.Terminal) {
	for {
		select {
		case c, ok := <-ch:
			if !ok {
				return
			}
			feedAll(term, c.data)
		default:
			return
		}
	}
}
