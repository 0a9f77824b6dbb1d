package vtterm

import "testing"

func feedString(t *Terminal, s string) {
	for _, b := range []byte(s) {
		t.Feed(b)
	}
}

func TestPlainText(t *testing.T) {
	term := New(10, 3)
	feedString(term, "Hello")

	row := term.Grid().Row(0)
	got := string(runesOf(row))
	if got != "Hello     " {
		t.Errorf("row 0 = %q, want %q", got, "Hello     ")
	}
	col, rowIdx := term.Cursor()
	if col != 5 || rowIdx != 0 {
		t.Errorf("cursor = (%d,%d), want (5,0)", col, rowIdx)
	}
	for _, c := range row {
		if c.Fg != DefaultFg || c.Bg != DefaultBg {
			t.Errorf("cell %+v not default-colored", c)
		}
	}
}

func TestColoredText(t *testing.T) {
	term := New(10, 1)
	feedString(term, "\x1b[31mX\x1b[0m Y")

	x := term.Grid().At(0, 0)
	if x.Fg != (Color{205, 49, 49}) || x.Rune != 'X' {
		t.Errorf("cell(0,0) = %+v, want fg (205,49,49) rune X", x)
	}
	y := term.Grid().At(2, 0)
	if y.Fg != DefaultFg || y.Rune != 'Y' {
		t.Errorf("cell(2,0) = %+v, want default fg rune Y", y)
	}
}

func TestWrapAndScroll(t *testing.T) {
	term := New(3, 2)
	feedString(term, "ABCDEFG")

	if got := string(runesOf(term.Grid().Row(0))); got != "DEF" {
		t.Errorf("row 0 = %q, want DEF", got)
	}
	if got := string(runesOf(term.Grid().Row(1))); got != "G  " {
		t.Errorf("row 1 = %q, want %q", got, "G  ")
	}
	col, row := term.Cursor()
	if col != 1 || row != 1 {
		t.Errorf("cursor = (%d,%d), want (1,1)", col, row)
	}
}

func TestAlternateScreenRoundTrip(t *testing.T) {
	term := New(5, 2)
	feedString(term, "A")
	feedString(term, "\x1b[?1049h")
	feedString(term, "B")
	feedString(term, "\x1b[?1049l")

	if got := term.Grid().At(0, 0).Rune; got != 'A' {
		t.Errorf("cell(0,0) = %q, want A", got)
	}
	col, row := term.Cursor()
	if col != 1 || row != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", col, row)
	}
}

func TestAlternateScreenNoOpWithoutWrites(t *testing.T) {
	term := New(4, 2)
	feedString(term, "hi")
	before := term.Grid().Row(0)
	beforeCol, beforeRow := term.Cursor()

	feedString(term, "\x1b[?1049h\x1b[?1049l")

	after := term.Grid().Row(0)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("row mismatch at %d: %+v vs %+v", i, before[i], after[i])
		}
	}
	col, row := term.Cursor()
	if col != beforeCol || row != beforeRow {
		t.Errorf("cursor = (%d,%d), want (%d,%d)", col, row, beforeCol, beforeRow)
	}
}

func TestCursorPositionClamps(t *testing.T) {
	term := New(10, 5)
	feedString(term, "\x1b[999;999H")
	col, row := term.Cursor()
	if col != 9 || row != 4 {
		t.Errorf("cursor = (%d,%d), want (9,4)", col, row)
	}
}

func TestSGRResetThenApply(t *testing.T) {
	fresh := New(5, 1)
	feedString(fresh, "\x1b[31;1mX")
	wantFg := fresh.Grid().At(0, 0).Fg

	term := New(5, 1)
	feedString(term, "\x1b[1;4;7m\x1b[0m\x1b[31;1mX")
	got := term.Grid().At(0, 0)
	if got.Fg != wantFg {
		t.Errorf("fg after reset+apply = %+v, want %+v", got.Fg, wantFg)
	}
	if got.Attrs.Underline || got.Attrs.Inverse {
		t.Errorf("attrs leaked across SGR 0: %+v", got.Attrs)
	}
}

func TestValidMultibyteRuneIsWritten(t *testing.T) {
	term := New(5, 1)
	feedString(term, "caf\xc3\xa9")

	row := term.Grid().Row(0)
	got := string(runesOf(row))
	if got != "café " {
		t.Errorf("row 0 = %q, want %q", got, "café ")
	}
}

func TestInvalidUTF8LeadDoesNotSwallowFollowingBytes(t *testing.T) {
	term := New(5, 1)
	feedString(term, "\xc3ABC")

	row := term.Grid().Row(0)
	got := string(runesOf(row))
	if got != "ABC  " {
		t.Errorf("row 0 = %q, want %q (stray lead byte dropped, ABC preserved)", got, "ABC  ")
	}
}

func TestInvalidUTF8LeadDoesNotSwallowEscapeSequence(t *testing.T) {
	term := New(5, 1)
	feedString(term, "\xc3\x1b[31mX")

	got := term.Grid().At(0, 0)
	if got.Rune != 'X' || got.Fg != (Color{205, 49, 49}) {
		t.Errorf("cell(0,0) = %+v, want rune X with red fg — escape sequence must not be eaten by a stray UTF-8 lead byte", got)
	}
}

func TestDoubleFullResetIsIdempotent(t *testing.T) {
	term := New(8, 4)
	feedString(term, "hello\x1b[31mworld")
	feedString(term, "\x1bc\x1bc")

	fresh := New(8, 4)
	for row := 0; row < 4; row++ {
		got, want := term.Grid().Row(row), fresh.Grid().Row(row)
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("row %d cell %d = %+v, want %+v", row, i, got[i], want[i])
			}
		}
	}
}

func TestFeedNeverPanicsOnAnyByte(t *testing.T) {
	term := New(20, 10)
	for b := 0; b < 256; b++ {
		term.Feed(byte(b))
	}
}

func TestXterm256Palette(t *testing.T) {
	// Two columns, so writing X does not wrap and scroll the cell away.
	term := New(2, 1)
	feedString(term, "\x1b[38;5;196mX")
	got := term.Grid().At(0, 0).Fg
	want := xterm256(196)
	if got != want {
		t.Errorf("fg for 38;5;196 = %+v, want %+v", got, want)
	}
}

func runesOf(cells []Cell) []rune {
	out := make([]rune, len(cells))
	for i, c := range cells {
		out[i] = c.Rune
	}
	return out
}
