package vtterm

// ansiColors and ansiBrightColors are the fixed xterm-style standard
// and bright palettes used by SGR 30-37/40-47 and 90-97/100-107, and
// as entries 0-15 of the 256-color palette.
var ansiColors = [8]Color{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
}

var ansiBrightColors = [8]Color{
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// cube6 holds the 6 intensity levels used by the 216-color cube
// (indices 16-231 of the 256-color palette).
var cube6 = [6]uint8{0, 95, 135, 175, 215, 255}

// xterm256 resolves a 256-color palette index to RGB, per spec.md §4.1.
func xterm256(idx uint8) Color {
	switch {
	case idx < 8:
		return ansiColors[idx]
	case idx < 16:
		return ansiBrightColors[idx-8]
	case idx < 232:
		n := idx - 16
		r := n / 36
		g := (n % 36) / 6
		b := n % 6
		return Color{cube6[r], cube6[g], cube6[b]}
	default:
		shade := uint8(8 + 10*int(idx-232))
		return Color{shade, shade, shade}
	}
}

func clampByteParam(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
