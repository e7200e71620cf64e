package circuit

import (
	"fmt"

	"laser-circuit/internal/core"
)

// Receiver absorbs photons and accumulates their energy. It is labelled R0
// to R9.
type Receiver struct {
	symbol         string
	pos            core.Position
	activated      bool
	activationTime int
	energy         int
	photons        int
}

// NewReceiver returns an inactive receiver at (x, y).
func NewReceiver(symbol string, x, y int) *Receiver {
	return &Receiver{symbol: symbol, pos: core.Position{X: x, Y: y}}
}

func (r *Receiver) Symbol() string          { return r.symbol }
func (r *Receiver) Position() core.Position { return r.pos }
func (r *Receiver) Kind() Kind              { return KindReceiver }

// Activated reports whether any photon has reached the receiver.
func (r *Receiver) Activated() bool { return r.activated }

// ActivationTime is the tick of the first absorption. It is zero until the
// receiver activates.
func (r *Receiver) ActivationTime() int { return r.activationTime }

// Energy is the sum of the frequencies of all absorbed photons.
func (r *Receiver) Energy() int { return r.energy }

// PhotonsAbsorbed counts absorbed photons.
func (r *Receiver) PhotonsAbsorbed() int { return r.photons }

// BoardRune is the character used on the board: the receiver digit.
func (r *Receiver) BoardRune() rune {
	if r.symbol == "" {
		return '?'
	}
	return rune(r.symbol[len(r.symbol)-1])
}

func (r *Receiver) absorb(p *Photon, tick int) {
	if !r.activated {
		r.activated = true
		r.activationTime = tick
	}
	r.energy += p.frequency
	r.photons++
	p.absorbed = true
}

func (r *Receiver) String() string {
	return fmt.Sprintf("%s: %dTHz (%d)", r.symbol, r.energy, r.photons)
}

// IsReceiverSymbol reports whether s is a valid receiver label.
func IsReceiverSymbol(s string) bool {
	return len(s) == 2 && s[0] == 'R' && s[1] >= '0' && s[1] <= '9'
}
