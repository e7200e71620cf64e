package display

import (
	"strings"

	"laser-circuit/internal/circuit"
	"laser-circuit/internal/config"
	"laser-circuit/internal/core"
)

const (
	ansiDim       = "\033[38;5;245m"
	ansiUnderline = "\033[4m"
	ansiReset     = "\033[0m"
	ansiDefault   = "\033[39m"
)

// Options controls how boards are drawn.
type Options struct {
	Color  bool
	Colors config.ColorConfig
}

type band struct {
	code string
	config.Band
}

// Palette maps photon frequencies to ANSI colour codes.
type Palette struct {
	bands []band
}

// NewPalette orders the bands from violet down to red. The first band
// containing a frequency wins.
func NewPalette(c config.ColorConfig) Palette {
	return Palette{bands: []band{
		{"\033[35m", c.Violet},
		{"\033[34m", c.Blue},
		{"\033[36m", c.Cyan},
		{"\033[32m", c.Green},
		{"\033[33m", c.Yellow},
		{"\033[38;5;166m", c.Orange},
		{"\033[31m", c.Red},
	}}
}

// Code returns the colour for freq, or the terminal default outside every
// band.
func (p Palette) Code(freq int) string {
	for _, b := range p.bands {
		if b.Contains(freq) {
			return b.code
		}
	}
	return ansiDefault
}

// Board draws the circuit inside a +---+ border.
func Board(c *circuit.Circuit, opts Options) string {
	if !opts.Color {
		return frame(c.Width(), c.Board().String())
	}
	return frame(c.Width(), strings.Join(colourRows(c, NewPalette(opts.Colors)), "\n"))
}

func frame(width int, body string) string {
	edge := "+" + strings.Repeat("-", width) + "+"
	var b strings.Builder
	b.WriteString(edge)
	b.WriteByte('\n')
	for _, row := range strings.Split(body, "\n") {
		b.WriteByte('|')
		b.WriteString(row)
		b.WriteString("|\n")
	}
	b.WriteString(edge)
	return b.String()
}

func colourRows(c *circuit.Circuit, pal Palette) []string {
	w, h := c.Width(), c.Height()
	cells := make([]string, w*h)
	for i := range cells {
		cells[i] = " "
	}
	set := func(p core.Position, s string) { cells[p.Y*w+p.X] = s }

	// Earlier photons keep the cells they marked first.
	marked := make([]bool, w*h)
	trail := string(circuit.PhotonRune)
	for _, ph := range c.Photons() {
		code := pal.Code(ph.Frequency())
		for _, p := range ph.Path() {
			if i := p.Y*w + p.X; !marked[i] {
				marked[i] = true
				set(p, code+trail+ansiReset)
			}
		}
	}
	for _, e := range c.Emitters() {
		style := ansiUnderline
		if e.Emitted() {
			style = ansiDim
		}
		set(e.Position(), style+e.Symbol()+ansiReset)
	}
	for _, r := range c.Receivers() {
		style := ansiDim
		if r.Activated() {
			style = ansiUnderline
		}
		set(r.Position(), style+string(r.BoardRune())+ansiReset)
	}
	for _, m := range c.Mirrors() {
		set(m.Position(), m.Symbol())
	}

	rows := make([]string, h)
	for y := range rows {
		rows[y] = strings.Join(cells[y*w:(y+1)*w], "")
	}
	return rows
}
