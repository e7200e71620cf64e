package circuit

import "laser-circuit/internal/core"

// Outcome is the result of a photon meeting a mirror.
type Outcome struct {
	Direction Direction
	Absorbed  bool
}

func turn(d Direction) Outcome { return Outcome{Direction: d} }

var absorbed = Outcome{Absorbed: true}

// reflections is indexed by the incoming direction: N, E, S, W.
var reflections = map[string][4]Outcome{
	"/":  {turn(East), turn(North), turn(West), turn(South)},
	"\\": {turn(West), turn(South), turn(East), turn(North)},
	">":  {turn(East), absorbed, turn(East), absorbed},
	"<":  {turn(West), absorbed, turn(West), absorbed},
	"^":  {absorbed, turn(North), absorbed, turn(North)},
	"v":  {absorbed, turn(South), absorbed, turn(South)},
}

// MirrorSymbols lists the mirror kinds in table order.
func MirrorSymbols() []string { return []string{"/", "\\", ">", "<", "^", "v"} }

// IsMirrorSymbol reports whether s names a mirror kind.
func IsMirrorSymbol(s string) bool {
	_, ok := reflections[s]
	return ok
}

// Reflection looks up the outcome for a photon heading d meeting a mirror of
// the given kind.
func Reflection(symbol string, d Direction) (Outcome, bool) {
	row, ok := reflections[symbol]
	if !ok || int(d) >= len(row) {
		return Outcome{}, false
	}
	return row[d], true
}

// Mirror redirects or stops photons. It never changes after creation.
type Mirror struct {
	symbol string
	pos    core.Position
}

// NewMirror returns a mirror of the given kind at (x, y).
func NewMirror(symbol string, x, y int) *Mirror {
	return &Mirror{symbol: symbol, pos: core.Position{X: x, Y: y}}
}

func (m *Mirror) Symbol() string          { return m.symbol }
func (m *Mirror) Position() core.Position { return m.pos }
func (m *Mirror) Kind() Kind              { return KindMirror }

// Reflect applies the mirror table to p. Absorbed photons are left alone, as
// are photons meeting a mirror of unknown kind.
func (m *Mirror) Reflect(p *Photon) {
	if p.absorbed {
		return
	}
	out, ok := Reflection(m.symbol, p.dir)
	if !ok {
		return
	}
	if out.Absorbed {
		p.absorbed = true
		return
	}
	p.dir = out.Direction
}
