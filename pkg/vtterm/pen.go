package vtterm

// Pen is the current drawing state: the colors and attributes applied
// to every character written to the grid. SGR parameters mutate it;
// SGR 0 resets it to defaults.
type Pen struct {
	Fg, Bg Color
	Attrs  Attrs
}

func defaultPen() Pen {
	return Pen{Fg: DefaultFg, Bg: DefaultBg}
}

func (p *Pen) reset() {
	*p = defaultPen()
}

func (p *Pen) cell(r rune) Cell {
	return Cell{Rune: r, Fg: p.Fg, Bg: p.Bg, Attrs: p.Attrs}
}
