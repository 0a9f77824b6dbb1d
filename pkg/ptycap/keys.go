package ptycap

import "strings"

// TranslateInput turns one symbolic input name (case-insensitive) into
// the byte sequence to write to the PTY, per spec.md §4.3's input
// translation table. Anything not recognized as a named key is treated
// as a literal string: its UTF-8 bytes followed by a carriage return.
func TranslateInput(name string) []byte {
	lower := strings.ToLower(strings.TrimSpace(name))

	switch lower {
	case "up":
		return []byte("\x1b[A")
	case "down":
		return []byte("\x1b[B")
	case "right":
		return []byte("\x1b[C")
	case "left":
		return []byte("\x1b[D")
	case "home":
		return []byte("\x1b[H")
	case "end":
		return []byte("\x1b[F")
	case "pageup":
		return []byte("\x1b[5~")
	case "pagedown":
		return []byte("\x1b[6~")
	case "insert":
		return []byte("\x1b[2~")
	case "delete":
		return []byte("\x1b[3~")
	case "enter", "return":
		return []byte("\r")
	case "space":
		return []byte(" ")
	case "tab":
		return []byte("\t")
	case "backspace":
		return []byte{0x7F}
	case "escape", "esc":
		return []byte{0x1B}
	case "f1":
		return []byte("\x1bOP")
	case "f2":
		return []byte("\x1bOQ")
	case "f3":
		return []byte("\x1bOR")
	case "f4":
		return []byte("\x1bOS")
	case "f5":
		return []byte("\x1b[15~")
	case "f6":
		return []byte("\x1b[17~")
	case "f7":
		return []byte("\x1b[18~")
	case "f8":
		return []byte("\x1b[19~")
	case "f9":
		return []byte("\x1b[20~")
	case "f10":
		return []byte("\x1b[21~")
	case "f11":
		return []byte("\x1b[23~")
	case "f12":
		return []byte("\x1b[24~")
	case "ctrl+space":
		return []byte{0x00}
	}

	if rest, ok := cutPrefix(lower, "ctrl+"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		return []byte{rest[0] - 'a' + 1}
	}
	if rest, ok := cutPrefix(lower, "alt+"); ok {
		out := append([]byte{0x1B}, rest...)
		return out
	}

	return append([]byte(name), '\r')
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
