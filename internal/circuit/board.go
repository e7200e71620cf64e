package circuit

import (
	"unicode/utf8"

	"laser-circuit/internal/core"
)

// PhotonRune marks cells a photon has passed through.
const PhotonRune = '.'

// Cell codes written by Cells, in painting order.
const (
	CellEmpty uint8 = iota
	CellTrail
	CellPhoton
	CellEmitter
	CellEmitterSpent
	CellReceiver
	CellReceiverLit
	CellMirror

	CellKinds
)

// Board rebuilds the character projection of the circuit: components by
// symbol (receivers by their digit) and photon trails by '.'. A trail never
// hides a component. The returned grid is a fresh copy owned by the caller.
func (c *Circuit) Board() *core.RuneGrid {
	g := core.NewRuneGrid(c.size.W, c.size.H)
	for _, p := range c.photons {
		for _, pos := range p.path {
			g.Set(pos.X, pos.Y, PhotonRune)
		}
	}
	for _, e := range c.emitters {
		g.Set(e.pos.X, e.pos.Y, firstRune(e.symbol))
	}
	for _, r := range c.receivers {
		g.Set(r.pos.X, r.pos.Y, r.BoardRune())
	}
	for _, m := range c.mirrors {
		g.Set(m.pos.X, m.pos.Y, firstRune(m.symbol))
	}
	return g
}

// Cells rebuilds the per-cell code buffer used by the pixel renderers. The
// slice is reused between calls.
func (c *Circuit) Cells() []uint8 {
	g := c.cells
	g.Clear()
	for _, p := range c.photons {
		for _, pos := range p.path {
			g.Set(pos.X, pos.Y, CellTrail)
		}
	}
	for _, p := range c.photons {
		if !p.absorbed {
			g.Set(p.pos.X, p.pos.Y, CellPhoton)
		}
	}
	for i, occ := range c.occupants {
		x, y := i%c.size.W, i/c.size.W
		switch occ.Kind {
		case KindEmitter:
			code := CellEmitter
			if occ.Emitter.emitted {
				code = CellEmitterSpent
			}
			g.Set(x, y, code)
		case KindReceiver:
			code := CellReceiver
			if occ.Receiver.activated {
				code = CellReceiverLit
			}
			g.Set(x, y, code)
		case KindMirror:
			g.Set(x, y, CellMirror)
		}
	}
	return g.Cells()
}

func firstRune(s string) rune {
	if s == "" {
		return '?'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
