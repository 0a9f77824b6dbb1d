// Package rasterize turns a vtterm.Grid snapshot into a pixel image. It
// is pure: no I/O, no PTY, no global state beyond the glyph cache in
// font.go. pkg/ptycap calls Rasterize once per capture point and hands
// the result to the PNG encoder in encode.go.
package rasterize

import (
	"github.com/ptyshot/ptyshot/pkg/vtterm"
)

const (
	// FontWidth and FontHeight are the source bitmap glyph cell size.
	FontWidth  = 8
	FontHeight = 16
	// PixelScale is the integer upscale applied when blitting a glyph
	// into the output image, matching spec.md §4.2.
	PixelScale = 2

	// CellWidth and CellHeight are the on-screen pixel size of one grid
	// cell after scaling.
	CellWidth  = FontWidth * PixelScale
	CellHeight = FontHeight * PixelScale

	// underlineFromRow is the first glyph row (0-indexed, pre-scale)
	// that gets painted solid when a cell carries the underline
	// attribute, per spec.md §4.2 ("the bottom two glyph rows").
	underlineFromRow = FontHeight - 2
)

// Image is the rasterizer's pure output: tightly-packed RGBA8 pixels in
// row-major order, plus the dimensions needed to interpret them. It
// carries no image library type so pkg/rasterize has no compile-time
// dependency on any particular encoder.
type Image struct {
	Pixels []byte // len == Width*Height*4, R,G,B,A per pixel
	Width  int
	Height int
}

// Rasterize renders every cell of grid into a RGBA8 image at
// CellWidth x CellHeight pixels per cell. It never mutates grid and
// never fails: an unrenderable rune just produces a blank glyph cell.
func Rasterize(grid *vtterm.Grid) Image {
	cols, rows := grid.Cols(), grid.Rows()
	width, height := cols*CellWidth, rows*CellHeight
	img := Image{
		Pixels: make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}

	for row := 0; row < rows; row++ {
		cells := grid.Row(row)
		for col, cell := range cells {
			drawCell(&img, col, row, cell)
		}
	}
	return img
}

// drawCell paints one grid cell's glyph into its CellWidth x CellHeight
// region of img, applying inverse video, bold-brighten, and underline
// per spec.md §4.2, in that order.
func drawCell(img *Image, col, row int, cell vtterm.Cell) {
	fg, bg := cell.Fg, cell.Bg
	if cell.Attrs.Inverse {
		fg, bg = bg, fg
	}
	if cell.Attrs.Bold {
		fg = brighten(fg)
	}

	glyph := glyphFor(cell.Rune)
	originX, originY := col*CellWidth, row*CellHeight

	for gy := 0; gy < FontHeight; gy++ {
		rowBits := glyph[gy]
		if cell.Attrs.Underline && gy >= underlineFromRow {
			rowBits = 0xFF
		}
		for gx := 0; gx < FontWidth; gx++ {
			on := rowBits&(1<<uint(gx)) != 0
			c := bg
			if on {
				c = fg
			}
			blitPixelBlock(img, originX+gx*PixelScale, originY+gy*PixelScale, c)
		}
	}
}

// blitPixelBlock fills the PixelScale x PixelScale block whose top-left
// corner is (x, y) with c, implementing the nearest-neighbor upscale
// from the FontWidth x FontHeight source bitmap to CellWidth x
// CellHeight output pixels.
func blitPixelBlock(img *Image, x, y int, c vtterm.Color) {
	for dy := 0; dy < PixelScale; dy++ {
		rowOff := (y+dy)*img.Width + x
		for dx := 0; dx < PixelScale; dx++ {
			o := (rowOff + dx) * 4
			img.Pixels[o+0] = c.R
			img.Pixels[o+1] = c.G
			img.Pixels[o+2] = c.B
			img.Pixels[o+3] = 0xFF
		}
	}
}

// brighten implements the bold-brighten formula from spec.md §4.2: each
// channel becomes the larger of a saturating +64 and a 4/3 scale-up.
func brighten(c vtterm.Color) vtterm.Color {
	return vtterm.Color{
		R: brightenChannel(c.R),
		G: brightenChannel(c.G),
		B: brightenChannel(c.B),
	}
}

func brightenChannel(v uint8) uint8 {
	added := int(v) + 64
	if added > 255 {
		added = 255
	}
	scaled := (int(v) * 4) / 3
	if scaled > 255 {
		scaled = 255
	}
	if added > scaled {
		return uint8(added)
	}
	return uint8(scaled)
}
