package rasterize

// boxGlyphs is a hand-authored bitmap table for the box-drawing and
// block-element ranges (U+2500-U+259F) that golang.org/x/image's
// basicfont does not cover. It plays the same role the original
// implementation's font8x8 BOX_FONTS/BLOCK_FONTS tables did — a small
// constant bitmap table, built here procedurally from a handful of
// line/shade primitives instead of a literal per-glyph byte dump.
var boxGlyphs = buildBoxGlyphs()

const (
	vCol0, vCol1 = 3, 4  // the two center columns used for vertical strokes
	hRow0, hRow1 = 7, 8  // the two center rows used for horizontal strokes
)

func buildBoxGlyphs() map[rune]glyphRows {
	vUp := lineMask(func(px, py int) bool { return py < 8 && (px == vCol0 || px == vCol1) })
	vDown := lineMask(func(px, py int) bool { return py >= 8 && (px == vCol0 || px == vCol1) })
	hLeft := lineMask(func(px, py int) bool { return px < 4 && (py == hRow0 || py == hRow1) })
	hRight := lineMask(func(px, py int) bool { return px >= 4 && (py == hRow0 || py == hRow1) })

	vFull := orMask(vUp, vDown)
	hFull := orMask(hLeft, hRight)

	m := map[rune]glyphRows{
		0x2500: hFull,                                   // ─
		0x2502: vFull,                                   // │
		0x250C: orMask(vDown, hRight),                   // ┌
		0x2510: orMask(vDown, hLeft),                    // ┐
		0x2514: orMask(vUp, hRight),                      // └
		0x2518: orMask(vUp, hLeft),                       // ┘
		0x251C: orMask(vFull, hRight),                    // ├
		0x2524: orMask(vFull, hLeft),                     // ┤
		0x252C: orMask(vDown, hFull),                     // ┬
		0x2534: orMask(vUp, hFull),                       // ┴
		0x253C: orMask(vFull, hFull),                     // ┼

		// block elements
		0x2580: lineMask(func(px, py int) bool { return py < 8 }),              // upper half
		0x2584: lineMask(func(px, py int) bool { return py >= 8 }),             // lower half
		0x2588: lineMask(func(px, py int) bool { return true }),                // full block
		0x258C: lineMask(func(px, py int) bool { return px < 4 }),              // left half
		0x2590: lineMask(func(px, py int) bool { return px >= 4 }),             // right half
		0x2591: shadeMask(4),                                                   // light shade ~25%
		0x2592: shadeMask(2),                                                   // medium shade ~50%
		0x2593: shadeMask(4 - 1),                                               // dark shade ~75%, see shadeMask
	}
	return m
}

// lineMask builds a glyphRows from a predicate over (px, py) in the
// 8x16 cell.
func lineMask(set func(px, py int) bool) glyphRows {
	var g glyphRows
	for py := 0; py < 16; py++ {
		var row byte
		for px := 0; px < 8; px++ {
			if set(px, py) {
				row |= 1 << uint(px)
			}
		}
		g[py] = row
	}
	return g
}

// shadeMask builds a checkerboard-style fill used for the light/medium/
// dark shade block characters. density 4 -> ~25% filled (every 4th
// cell), density 2 -> ~50% (checkerboard), density 3 (the dark shade
// above) is handled as the inverse of the light shade to approximate
// ~75%.
func shadeMask(density int) glyphRows {
	if density == 3 {
		// dark shade: inverse of light shade (~75% filled)
		light := shadeMask(4)
		var g glyphRows
		for py := range g {
			g[py] = ^light[py] & 0xFF
		}
		return g
	}
	return lineMask(func(px, py int) bool {
		return (px+py)%density == 0
	})
}

func orMask(a, b glyphRows) glyphRows {
	var out glyphRows
	for i := range out {
		out[i] = a[i] | b[i]
	}
	return out
}
