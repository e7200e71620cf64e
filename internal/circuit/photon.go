package circuit

import "laser-circuit/internal/core"

// Photon is a single light particle travelling across the board. Once
// absorbed it never moves or changes again.
type Photon struct {
	pos       core.Position
	dir       Direction
	frequency int
	absorbed  bool
	path      []core.Position
}

// NewPhoton returns an unabsorbed photon at pos.
func NewPhoton(pos core.Position, dir Direction, frequency int) *Photon {
	return &Photon{pos: pos, dir: dir, frequency: frequency}
}

// Position returns the current cell. An edge-absorbed photon keeps the last
// cell it occupied on the board.
func (p *Photon) Position() core.Position { return p.pos }

// Direction returns the current heading.
func (p *Photon) Direction() Direction { return p.dir }

// Frequency returns the photon frequency in THz.
func (p *Photon) Frequency() int { return p.frequency }

// Absorbed reports whether the photon has stopped.
func (p *Photon) Absorbed() bool { return p.absorbed }

// Path returns the cells entered by the photon, in order, excluding the
// emission cell.
func (p *Photon) Path() []core.Position {
	return append([]core.Position(nil), p.path...)
}

// Move advances the photon one cell in its heading. A photon that would
// leave a width x height board is absorbed in place.
func (p *Photon) Move(width, height int) {
	if p.absorbed {
		return
	}
	next := p.pos.Offset(p.dir.Delta())
	if !(core.Size{W: width, H: height}).Contains(next) {
		p.absorbed = true
		return
	}
	p.pos = next
	p.path = append(p.path, next)
}

// SetDirection changes the heading unless the photon is absorbed.
func (p *Photon) SetDirection(d Direction) {
	if p.absorbed {
		return
	}
	p.dir = d
}

// InteractWith applies the behaviour of the occupant the photon collided
// with at the given tick.
func (p *Photon) InteractWith(o Occupant, tick int) {
	if p.absorbed {
		return
	}
	switch o.Kind {
	case KindReceiver:
		o.Receiver.absorb(p, tick)
	case KindEmitter:
		p.absorbed = true
	case KindMirror:
		o.Mirror.Reflect(p)
	}
}
