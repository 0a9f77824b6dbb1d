package rasterize

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyphRows is one glyph's bitmap: 16 rows, each a byte whose least
// significant bit is the leftmost pixel (spec.md §4.2).
type glyphRows [16]byte

// glyphCache memoizes basicfont-rendered glyphs; the font is static for
// the life of the process so this never needs invalidation.
var glyphCache = map[rune]glyphRows{}

// GlyphBitmap exposes the same 8x16 bitmap glyphFor renders, for
// callers outside this package that need to paint text without going
// through a vtterm.Grid (pkg/mockframebuffer's draw_text).
func GlyphBitmap(r rune) [16]byte {
	return glyphFor(r)
}

// glyphFor resolves the 8x16 bitmap for a code point. ASCII printable
// and the portion of Latin-1 the embedded face covers are rendered
// from golang.org/x/image/font/basicfont; box-drawing and block
// elements come from the hand-authored table in font_boxes.go; Braille
// patterns are synthesized algorithmically. Anything else renders
// blank (all-zero), per spec.md's "missing glyphs render as all-zero"
// rule.
func glyphFor(r rune) glyphRows {
	if g, ok := boxGlyphs[r]; ok {
		return g
	}
	if g, ok := brailleGlyph(r); ok {
		return g
	}
	if g, ok := glyphCache[r]; ok {
		return g
	}
	g, ok := renderBasicFontGlyph(r)
	if !ok {
		g = glyphRows{}
	}
	glyphCache[r] = g
	return g
}

// renderBasicFontGlyph draws one rune with basicfont.Face7x13 into an
// 8x16 alpha mask and samples it into our row-byte bitmap format.
func renderBasicFontGlyph(r rune) (glyphRows, bool) {
	if r < 0x20 {
		return glyphRows{}, false
	}
	// basicfont draws its U+FFFD glyph for runes outside its ranges, so
	// coverage is checked against the ranges directly.
	covered := false
	for _, rg := range basicfont.Face7x13.Ranges {
		if r >= rg.Low && r < rg.High {
			covered = true
			break
		}
	}
	if !covered {
		return glyphRows{}, false
	}

	img := image.NewAlpha(image.Rect(0, 0, 8, 16))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Alpha{A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, 13),
	}
	advance, ok := drawer.Face.GlyphAdvance(r)
	if !ok || advance == 0 {
		return glyphRows{}, false
	}
	drawer.DrawString(string(r))

	var out glyphRows
	for py := 0; py < 16; py++ {
		var row byte
		for px := 0; px < 8; px++ {
			if img.AlphaAt(px, py).A > 127 {
				row |= 1 << uint(px)
			}
		}
		out[py] = row
	}
	return out, true
}

// brailleGlyph synthesizes the 8x16 bitmap for a Braille pattern
// (U+2800-U+28FF) directly from its Unicode bit pattern: the low byte
// encodes 8 dots in a 2-column x 4-row layout. Dots 1,2,3 are the left
// column's first three rows; 4,5,6 the right column's; 7,8 the fourth
// dot-row, left then right.
func brailleGlyph(r rune) (glyphRows, bool) {
	const base = 0x2800
	if r < base || r > 0x28FF {
		return glyphRows{}, false
	}
	pattern := byte(r - base)

	const left = 0b00001110  // 3-pixel mask near the left edge
	const right = 0b01110000 // 3-pixel mask near the right edge

	var out glyphRows
	paint := func(rowA, rowB int, mask byte) {
		out[rowA] |= mask
		out[rowB] |= mask
	}
	if pattern&0x01 != 0 {
		paint(1, 2, left)
	}
	if pattern&0x02 != 0 {
		paint(5, 6, left)
	}
	if pattern&0x04 != 0 {
		paint(9, 10, left)
	}
	if pattern&0x40 != 0 {
		paint(13, 14, left)
	}
	if pattern&0x08 != 0 {
		paint(1, 2, right)
	}
	if pattern&0x10 != 0 {
		paint(5, 6, right)
	}
	if pattern&0x20 != 0 {
		paint(9, 10, right)
	}
	if pattern&0x80 != 0 {
		paint(13, 14, right)
	}
	return out, true
}
