// Package statewalk supplements the core single-run capture contract
// with multi-state orchestration: a named sequence of states, each
// reached by its own input actions from the previous one, with an
// optional expected description for later VLM comparison. It is
// grounded on the original implementation's harness module, which the
// distilled core specification dropped.
package statewalk

import (
	"fmt"
	"time"

	"github.com/ptyshot/ptyshot/pkg/ptycap"
)

// InputAction is one step within a state's transition, mirroring the
// original's SendString/SendKey enum. Only SendKey resolves through
// ptycap.TranslateInput; the distinction is kept because a literal
// string and a same-named symbolic key can collide (e.g. the literal
// text "enter" versus the Enter key).
type InputAction struct {
	Kind  ActionKind
	Value string
}

// ActionKind distinguishes a literal string action from a symbolic key.
type ActionKind int

const (
	SendString ActionKind = iota
	SendKey
)

// resolveBytes turns the action into the literal bytes written to the
// PTY. A SendKey value resolves through the same named-key table as a
// plain capture run; a SendString value is never looked up in that
// table, so a literal string that happens to match a key name (e.g.
// the text "tab") is sent as text rather than as that key.
func (a InputAction) resolveBytes() []byte {
	if a.Kind == SendKey {
		return ptycap.TranslateInput(a.Value)
	}
	return append([]byte(a.Value), '\r')
}

// State is one named point in a navigation sequence: a human-readable
// name, a description, the inputs that reach it from the previous
// state, whether to capture it, and an optional expectation string for
// downstream VLM comparison.
type State struct {
	Name                string
	Description         string
	Inputs              []InputAction
	CaptureSnapshot     bool
	ExpectedDescription string
}

// Config describes one multi-state walk.
type Config struct {
	Binary string
	Args   []string
	States []State
	Size   ptycap.Size
	Delay  time.Duration
}

// Result pairs one captured (or skipped) state with its capture, if
// CaptureSnapshot was set.
type Result struct {
	State   State
	Capture *ptycap.Capture
}

// Walk drives the binary through every state in order, reusing a
// single PTY session across the whole sequence so state N's capture is
// genuinely the starting point for state N+1 — matching the original
// harness's single-process-per-run model.
func Walk(cfg Config) ([]Result, error) {
	sequences, boundaries := flattenStates(cfg.States)

	captures, err := ptycap.RunRaw(ptycap.Options{
		Binary: cfg.Binary,
		Args:   cfg.Args,
		Size:   cfg.Size,
		Delay:  cfg.Delay,
	}, sequences)
	if err != nil {
		return nil, fmt.Errorf("statewalk: %w", err)
	}

	return partitionCaptures(cfg.States, boundaries, captures), nil
}

// flattenStates concatenates every state's input actions into one
// ordered byte-sequence list and records, for each state, the index
// into that list's resulting capture slice that corresponds to "after
// this state's inputs have all been sent".
func flattenStates(states []State) (sequences [][]byte, boundaries []int) {
	boundaries = make([]int, len(states))
	for i, state := range states {
		for _, action := range state.Inputs {
			sequences = append(sequences, action.resolveBytes())
		}
		boundaries[i] = len(sequences)
	}
	return sequences, boundaries
}

// partitionCaptures maps the flat capture slice RunRaw returns back
// onto each state, per flattenStates' boundaries, skipping states that
// did not ask to be captured.
func partitionCaptures(states []State, boundaries []int, captures []ptycap.Capture) []Result {
	results := make([]Result, 0, len(states))
	for i, state := range states {
		captureIndex := boundaries[i]
		r := Result{State: state}
		if state.CaptureSnapshot && captureIndex < len(captures) {
			c := captures[captureIndex]
			c.Input = state.Name
			r.Capture = &c
		}
		results = append(results, r)
	}
	return results
}
