package vtterm

import "strings"

// Terminal is the aggregate emulator instance: grid, cursor, pen,
// optional alternate-screen snapshot, and parser state. It is created
// once per capture run, mutated only by Feed, and discarded with the
// run.
type Terminal struct {
	grid   *Grid
	cursor Cursor
	pen    Pen
	alt    *savedScreen
	parser parser
}

// New creates an emulator with a blank grid, cursor at (0,0), and a
// default pen.
func New(cols, rows int) *Terminal {
	return &Terminal{
		grid:   NewGrid(cols, rows),
		pen:    defaultPen(),
		parser: newParser(),
	}
}

// Grid returns a read-only view of the current cell grid.
func (t *Terminal) Grid() *Grid { return t.grid }

// Cursor returns the current cursor position.
func (t *Terminal) Cursor() (col, row int) { return t.cursor.Col, t.cursor.Row }

// Cols and Rows report the fixed grid dimensions.
func (t *Terminal) Cols() int { return t.grid.Cols() }
func (t *Terminal) Rows() int { return t.grid.Rows() }

// DumpText renders the grid as plain text, one line per row, for local
// debugging (PTYSHOT_DUMP_TEXT) without opening the rendered PNG.
func (t *Terminal) DumpText() string {
	var b strings.Builder
	for row := 0; row < t.grid.Rows(); row++ {
		for _, c := range t.grid.Row(row) {
			b.WriteRune(c.Rune)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// writeRune places one character at the cursor, copying the current
// pen, then advances the cursor. Wrap and scroll follow spec.md's
// tie-break: wrap first (column 0, next row), then scroll if that
// advance overflows the last row.
func (t *Terminal) writeRune(r rune) {
	cols, rows := t.grid.Cols(), t.grid.Rows()
	if t.cursor.Col < cols && t.cursor.Row < rows {
		t.grid.Set(t.cursor.Col, t.cursor.Row, t.pen.cell(r))
	}
	t.cursor.Col++
	if t.cursor.Col >= cols {
		t.cursor.Col = 0
		t.cursor.Row++
	}
	if t.cursor.Row >= rows {
		t.grid.scrollUp()
		t.cursor.Row = rows - 1
	}
}

func (t *Terminal) lineFeed() {
	t.cursor.Row++
	if t.cursor.Row >= t.grid.Rows() {
		t.grid.scrollUp()
		t.cursor.Row = t.grid.Rows() - 1
	}
}

func (t *Terminal) carriageReturn() { t.cursor.Col = 0 }

func (t *Terminal) tab() {
	next := ((t.cursor.Col / 8) + 1) * 8
	if next >= t.grid.Cols() {
		next = t.grid.Cols() - 1
	}
	t.cursor.Col = next
}

func (t *Terminal) backspace() {
	if t.cursor.Col > 0 {
		t.cursor.Col--
	}
}

// fullReset implements ESC c: clear screen, home cursor, reset pen.
func (t *Terminal) fullReset() {
	t.grid.fillBlank()
	t.cursor = Cursor{}
	t.pen.reset()
	t.alt = nil
}

func paramOr(params []int, i, def int) int {
	if i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

// csiDispatch applies one fully-parsed CSI sequence, per the dispatch
// table in spec.md §4.1.
func (t *Terminal) csiDispatch(params []int, private bool, final byte) {
	cols, rows := t.grid.Cols(), t.grid.Rows()

	switch final {
	case 'H', 'f':
		row := paramOr(params, 0, 1) - 1
		col := paramOr(params, 1, 1) - 1
		t.cursor.Col, t.cursor.Row = col, row
		t.cursor.clamp(cols, rows)

	case 'A':
		t.cursor.Row -= paramOr(params, 0, 1)
		t.cursor.clamp(cols, rows)
	case 'B':
		t.cursor.Row += paramOr(params, 0, 1)
		t.cursor.clamp(cols, rows)
	case 'C':
		t.cursor.Col += paramOr(params, 0, 1)
		t.cursor.clamp(cols, rows)
	case 'D':
		t.cursor.Col -= paramOr(params, 0, 1)
		t.cursor.clamp(cols, rows)

	case 'J':
		switch paramOr(params, 0, 0) {
		case 0:
			t.grid.clearFrom(t.cursor.Col, t.cursor.Row, t.pen.Bg)
		case 1:
			// explicitly unsupported, per spec.md's open question
		case 2, 3:
			t.grid.clear(t.pen.Bg)
			t.cursor = Cursor{}
		}

	case 'K':
		t.grid.clearLineFrom(t.cursor.Col, t.cursor.Row, t.pen.Bg)

	case 'm':
		t.sgr(params)

	case 's':
		t.cursor.save()
	case 'u':
		t.cursor.restore(cols, rows)

	case 'h':
		if private {
			t.setPrivateMode(paramOr(params, 0, 0), true)
		}
	case 'l':
		if private {
			t.setPrivateMode(paramOr(params, 0, 0), false)
		}
	}
}

func (t *Terminal) setPrivateMode(mode int, set bool) {
	switch mode {
	case 47, 1047, 1049:
		if set {
			t.enterAlternate()
		} else {
			t.leaveAlternate()
		}
	default:
		// other private modes (cursor visibility, etc.) are ignored
	}
}

// sgr applies a Select Graphic Rendition parameter list, left to right.
// An empty list resets the pen, matching CSI m with no parameters.
func (t *Terminal) sgr(params []int) {
	if len(params) == 0 {
		t.pen.reset()
		return
	}

	for i := 0; i < len(params); i++ {
		v := params[i]
		switch {
		case v == 0:
			t.pen.reset()
		case v == 1:
			t.pen.Attrs.Bold = true
		case v == 22:
			t.pen.Attrs.Bold = false
		case v == 4:
			t.pen.Attrs.Underline = true
		case v == 24:
			t.pen.Attrs.Underline = false
		case v == 7:
			t.pen.Attrs.Inverse = true
		case v == 27:
			t.pen.Attrs.Inverse = false
		case v == 39:
			t.pen.Fg = DefaultFg
		case v == 49:
			t.pen.Bg = DefaultBg
		case v >= 30 && v <= 37:
			t.pen.Fg = ansiColors[v-30]
		case v >= 40 && v <= 47:
			t.pen.Bg = ansiColors[v-40]
		case v >= 90 && v <= 97:
			t.pen.Fg = ansiBrightColors[v-90]
		case v >= 100 && v <= 107:
			t.pen.Bg = ansiBrightColors[v-100]
		case v == 38 || v == 48:
			consumed := t.sgrExtendedColor(params[i:], v == 38)
			if consumed == 0 {
				// malformed extended-color sequence: skip just the
				// 38/48 itself, per spec.md's "unrecognized values
				// are skipped" rule.
				continue
			}
			i += consumed - 1
		default:
			// unrecognized SGR value: skipped without aborting the list
		}
	}
}

// sgrExtendedColor handles the `38;2;R;G;B`, `38;5;N` forms (and their
// `48;` background equivalents) starting at rest[0] == 38 or 48. It
// returns how many parameters (including the leading 38/48) were
// consumed, or 0 if the sequence is too short to be valid.
func (t *Terminal) sgrExtendedColor(rest []int, isFg bool) int {
	if len(rest) < 2 {
		return 0
	}
	switch rest[1] {
	case 2:
		if len(rest) < 5 {
			return 0
		}
		c := Color{clampByteParam(rest[2]), clampByteParam(rest[3]), clampByteParam(rest[4])}
		if isFg {
			t.pen.Fg = c
		} else {
			t.pen.Bg = c
		}
		return 5
	case 5:
		if len(rest) < 3 {
			return 0
		}
		c := xterm256(uint8(rest[2]))
		if isFg {
			t.pen.Fg = c
		} else {
			t.pen.Bg = c
		}
		return 3
	default:
		return 0
	}
}
