package ptycap

import (
	"bytes"
	"testing"
)

func TestTranslateInputNamedKeys(t *testing.T) {
	cases := map[string][]byte{
		"up":        []byte("\x1b[A"),
		"Down":      []byte("\x1b[B"),
		"RIGHT":     []byte("\x1b[C"),
		"left":      []byte("\x1b[D"),
		"home":      []byte("\x1b[H"),
		"end":       []byte("\x1b[F"),
		"pageup":    []byte("\x1b[5~"),
		"pagedown":  []byte("\x1b[6~"),
		"insert":    []byte("\x1b[2~"),
		"delete":    []byte("\x1b[3~"),
		"enter":     []byte("\r"),
		"return":    []byte("\r"),
		"space":     []byte(" "),
		"tab":       []byte("\t"),
		"backspace": {0x7F},
		"escape":    {0x1B},
		"esc":       {0x1B},
		"f1":        []byte("\x1bOP"),
		"f12":       []byte("\x1b[24~"),
	}
	for in, want := range cases {
		got := TranslateInput(in)
		if !bytes.Equal(got, want) {
			t.Errorf("TranslateInput(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranslateInputCtrlCombinations(t *testing.T) {
	got := TranslateInput("ctrl+c")
	if !bytes.Equal(got, []byte{3}) {
		t.Errorf("ctrl+c = %v, want [3]", got)
	}
	got = TranslateInput("ctrl+space")
	if !bytes.Equal(got, []byte{0}) {
		t.Errorf("ctrl+space = %v, want [0]", got)
	}
}

func TestTranslateInputAltCombinations(t *testing.T) {
	got := TranslateInput("alt+b")
	want := append([]byte{0x1B}, 'b')
	if !bytes.Equal(got, want) {
		t.Errorf("alt+b = %v, want %v", got, want)
	}
}

func TestTranslateInputLiteralStringAppendsCR(t *testing.T) {
	got := TranslateInput("hello world")
	want := append([]byte("hello world"), '\r')
	if !bytes.Equal(got, want) {
		t.Errorf("literal string = %q, want %q", got, want)
	}
}
