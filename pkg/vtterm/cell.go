// Package vtterm implements an incremental, I/O-free VT/ANSI terminal
// emulator: a byte-stream state machine that mutates a fixed-size cell
// grid, cursor, and drawing pen. It never touches a PTY, a file, or a
// network connection — pkg/ptycap feeds it bytes and pkg/rasterize
// reads the grid it produces.
package vtterm

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// DefaultFg and DefaultBg are the emulator's reset colors (spec: white on black).
var (
	DefaultFg = Color{255, 255, 255}
	DefaultBg = Color{0, 0, 0}
)

// Attrs holds the boolean text attributes a cell can carry.
type Attrs struct {
	Bold      bool
	Underline bool
	Inverse   bool
}

// Cell is a single character position in the grid. Every grid position
// always holds a well-defined Cell; there is no "absent" state.
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attrs
}

// blankCell returns a cell holding a space with default colors and no
// attributes, used to fill newly-scrolled rows and cleared regions.
func blankCell() Cell {
	return Cell{Rune: ' ', Fg: DefaultFg, Bg: DefaultBg}
}
