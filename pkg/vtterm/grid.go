package vtterm

// Grid is a rectangle of Cells of fixed dimensions, declared at
// construction and constant for the life of the emulator instance.
// Indexing is row-major.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid allocates a cols x rows grid filled with blank cells.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	g.fillBlank()
	return g
}

// Cols and Rows report the fixed grid dimensions.
func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

func (g *Grid) index(col, row int) int { return row*g.cols + col }

// At returns the cell at (col, row). Out-of-range coordinates panic —
// every call site in this package clamps first.
func (g *Grid) At(col, row int) Cell { return g.cells[g.index(col, row)] }

// Set writes a cell at (col, row).
func (g *Grid) Set(col, row int, c Cell) { g.cells[g.index(col, row)] = c }

// Row returns a copy of one row's cells, left to right.
func (g *Grid) Row(row int) []Cell {
	out := make([]Cell, g.cols)
	copy(out, g.cells[g.index(0, row):g.index(0, row)+g.cols])
	return out
}

func (g *Grid) fillBlank() {
	blank := blankCell()
	for i := range g.cells {
		g.cells[i] = blank
	}
}

// clone deep-copies the grid, used by alternate-screen save/restore.
func (g *Grid) clone() *Grid {
	out := &Grid{cols: g.cols, rows: g.rows, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// clear resets every cell to a blank cell carrying the given pen's
// background (erase operations fill with the pen's background, not
// always the default).
func (g *Grid) clear(bg Color) {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Fg: g.cells[i].Fg, Bg: bg}
	}
}

// clearFrom fills cells from (fromCol, fromRow) to the end of the grid
// (row-major order) with spaces carrying the given background.
func (g *Grid) clearFrom(fromCol, fromRow int, bg Color) {
	for row := fromRow; row < g.rows; row++ {
		start := 0
		if row == fromRow {
			start = fromCol
		}
		for col := start; col < g.cols; col++ {
			g.cells[g.index(col, row)] = Cell{Rune: ' ', Bg: bg}
		}
	}
}

// clearLineFrom fills from (fromCol, row) to the end of that row.
func (g *Grid) clearLineFrom(fromCol, row int, bg Color) {
	for col := fromCol; col < g.cols; col++ {
		g.cells[g.index(col, row)] = Cell{Rune: ' ', Bg: bg}
	}
}

// scrollUp drops row 0 and appends a blank row at the bottom, filled
// with default colors and cleared attributes.
func (g *Grid) scrollUp() {
	copy(g.cells, g.cells[g.cols:])
	blank := blankCell()
	for col := 0; col < g.cols; col++ {
		g.cells[g.index(col, g.rows-1)] = blank
	}
}
