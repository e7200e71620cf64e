package circuit

import (
	"fmt"

	"laser-circuit/internal/core"
)

// Pulse is the frequency and heading of the next emission.
type Pulse struct {
	Frequency int
	Direction Direction
}

// Emitter is a photon source labelled A to J.
type Emitter struct {
	symbol   string
	pos      core.Position
	pulse    Pulse
	hasPulse bool
	emitted  bool
}

// NewEmitter returns an emitter at (x, y) with no pulse sequence.
func NewEmitter(symbol string, x, y int) *Emitter {
	return &Emitter{symbol: symbol, pos: core.Position{X: x, Y: y}}
}

func (e *Emitter) Symbol() string          { return e.symbol }
func (e *Emitter) Position() core.Position { return e.pos }
func (e *Emitter) Kind() Kind              { return KindEmitter }

// SetPulseSequence configures the next emission.
func (e *Emitter) SetPulseSequence(frequency int, dir Direction) {
	e.pulse = Pulse{Frequency: frequency, Direction: dir}
	e.hasPulse = true
}

// Pulse returns the configured emission, if any.
func (e *Emitter) Pulse() (Pulse, bool) { return e.pulse, e.hasPulse }

// Emitted reports whether the emitter has fired in the current run.
func (e *Emitter) Emitted() bool { return e.emitted }

// Emit returns a new photon at the emitter position using the configured
// pulse. It returns nil when no pulse sequence was set.
func (e *Emitter) Emit() *Photon {
	if !e.hasPulse {
		return nil
	}
	e.emitted = true
	return NewPhoton(e.pos, e.pulse.Direction, e.pulse.Frequency)
}

func (e *Emitter) String() string {
	if !e.hasPulse {
		return e.symbol + ": no pulse sequence"
	}
	return fmt.Sprintf("%s: %dTHz, %s", e.symbol, e.pulse.Frequency, e.pulse.Direction)
}

// IsEmitterSymbol reports whether s is a valid emitter label.
func IsEmitterSymbol(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'J'
}
