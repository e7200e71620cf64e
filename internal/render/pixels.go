package render

import (
	"image/color"

	"laser-circuit/internal/circuit"
)

// CircuitPalette returns one colour per circuit cell code.
func CircuitPalette() []color.RGBA {
	p := make([]color.RGBA, circuit.CellKinds)
	p[circuit.CellEmpty] = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	p[circuit.CellTrail] = color.RGBA{R: 140, G: 110, B: 20, A: 255}
	p[circuit.CellPhoton] = color.RGBA{R: 255, G: 70, B: 40, A: 255}
	p[circuit.CellEmitter] = color.RGBA{R: 60, G: 120, B: 255, A: 255}
	p[circuit.CellEmitterSpent] = color.RGBA{R: 50, G: 60, B: 90, A: 255}
	p[circuit.CellReceiver] = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	p[circuit.CellReceiverLit] = color.RGBA{R: 60, G: 230, B: 90, A: 255}
	p[circuit.CellMirror] = color.RGBA{R: 200, G: 200, B: 220, A: 255}
	return p
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
