package circuit

import (
	"cmp"
	"fmt"
	"slices"

	"laser-circuit/internal/core"
)

// State is the lifecycle phase of a circuit.
type State uint8

const (
	// Idle: no photons have been emitted.
	Idle State = iota
	// Running: at least one photon is still travelling.
	Running
	// Finished: every photon has been absorbed.
	Finished
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "idle"
}

// Circuit owns a board, its components and its photons, and advances the
// simulation one tick at a time. It is not safe for concurrent use.
type Circuit struct {
	size core.Size

	emitters  []*Emitter
	receivers []*Receiver
	mirrors   []*Mirror
	photons   []*Photon

	// occupants is the row-major occupancy index, one entry per cell.
	occupants []Occupant
	cells     *core.ByteGrid

	clock int
}

// New returns an empty circuit. Non-positive dimensions are clamped to 1.
func New(width, height int) *Circuit {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Circuit{
		size:      core.Size{W: width, H: height},
		occupants: make([]Occupant, width*height),
		cells:     core.NewByteGrid(width, height),
	}
}

func (c *Circuit) Width() int      { return c.size.W }
func (c *Circuit) Height() int     { return c.size.H }
func (c *Circuit) Size() core.Size { return c.size }

// Clock is the number of ticks run so far, in nanoseconds.
func (c *Circuit) Clock() int { return c.clock }

// Emitters returns the emitters sorted by symbol.
func (c *Circuit) Emitters() []*Emitter { return slices.Clone(c.emitters) }

// Receivers returns the receivers sorted by symbol.
func (c *Circuit) Receivers() []*Receiver { return slices.Clone(c.receivers) }

// Mirrors returns the mirrors in insertion order.
func (c *Circuit) Mirrors() []*Mirror { return slices.Clone(c.mirrors) }

// Photons returns the photons in emission order.
func (c *Circuit) Photons() []*Photon { return slices.Clone(c.photons) }

// OccupantAt returns the stationary occupant of p, or an empty Occupant.
func (c *Circuit) OccupantAt(p core.Position) Occupant {
	if !c.size.Contains(p) {
		return Occupant{}
	}
	return c.occupants[p.Y*c.size.W+p.X]
}

// Receiver returns the receiver with the given symbol.
func (c *Circuit) Receiver(symbol string) (*Receiver, bool) {
	for _, r := range c.receivers {
		if r.symbol == symbol {
			return r, true
		}
	}
	return nil, false
}

// Emitter returns the emitter with the given symbol.
func (c *Circuit) Emitter(symbol string) (*Emitter, bool) {
	for _, e := range c.emitters {
		if e.symbol == symbol {
			return e, true
		}
	}
	return nil, false
}

// AddEmitter places an emitter. The checks run in order and the first
// failure is returned without mutating the circuit: kind, bounds, position
// collision, symbol collision among emitters.
func (c *Circuit) AddEmitter(comp Component) error {
	e, ok := comp.(*Emitter)
	if !ok || e == nil {
		return &PlacementError{Err: ErrWrongKind, Msg: "component is not an emitter"}
	}
	if err := c.checkPlacement(e); err != nil {
		return err
	}
	if _, taken := c.Emitter(e.symbol); taken {
		return symbolTaken(e.symbol)
	}
	c.emitters = insertSorted(c.emitters, e)
	c.occupy(e)
	return nil
}

// AddReceiver places a receiver; see AddEmitter for the check order.
func (c *Circuit) AddReceiver(comp Component) error {
	r, ok := comp.(*Receiver)
	if !ok || r == nil {
		return &PlacementError{Err: ErrWrongKind, Msg: "component is not a receiver"}
	}
	if err := c.checkPlacement(r); err != nil {
		return err
	}
	if _, taken := c.Receiver(r.symbol); taken {
		return symbolTaken(r.symbol)
	}
	c.receivers = insertSorted(c.receivers, r)
	c.occupy(r)
	return nil
}

// AddMirror places a mirror. Mirrors share symbols freely and keep insertion
// order.
func (c *Circuit) AddMirror(comp Component) error {
	m, ok := comp.(*Mirror)
	if !ok || m == nil {
		return &PlacementError{Err: ErrWrongKind, Msg: "component is not a mirror"}
	}
	if err := c.checkPlacement(m); err != nil {
		return err
	}
	c.mirrors = append(c.mirrors, m)
	c.occupy(m)
	return nil
}

// Place dispatches comp to the mutator for its kind.
func (c *Circuit) Place(comp Component) error {
	switch comp.(type) {
	case *Emitter:
		return c.AddEmitter(comp)
	case *Receiver:
		return c.AddReceiver(comp)
	case *Mirror:
		return c.AddMirror(comp)
	}
	return &PlacementError{Err: ErrWrongKind, Msg: "unknown component kind"}
}

func (c *Circuit) checkPlacement(comp Component) error {
	p := comp.Position()
	if !c.size.Contains(p) {
		return &PlacementError{
			Err: ErrOutOfBounds,
			Msg: fmt.Sprintf("position %v is out-of-bounds of %dx%d circuit board", p, c.size.W, c.size.H),
		}
	}
	// The occupancy index holds at most one component per cell, so the
	// emitter, receiver, mirror precedence is implied.
	if occ := c.OccupantAt(p); !occ.Empty() {
		return &PlacementError{
			Err: ErrPositionTaken,
			Msg: fmt.Sprintf("position %v is already taken by %s '%s'", p, occ.Kind, occ.Component().Symbol()),
		}
	}
	return nil
}

func symbolTaken(symbol string) error {
	return &PlacementError{Err: ErrSymbolTaken, Msg: fmt.Sprintf("symbol '%s' is already taken", symbol)}
}

func (c *Circuit) occupy(comp Component) {
	p := comp.Position()
	c.occupants[p.Y*c.size.W+p.X] = occupantOf(comp)
}

type symbolled interface{ Symbol() string }

func insertSorted[T symbolled](list []T, v T) []T {
	i, _ := slices.BinarySearchFunc(list, v, func(a, b T) int {
		return cmp.Compare(a.Symbol(), b.Symbol())
	})
	return slices.Insert(list, i, v)
}

// EmitPhotons has every emitter, in symbol order, emit one photon. Emitters
// without a pulse sequence emit nothing.
func (c *Circuit) EmitPhotons() {
	for _, e := range c.emitters {
		if p := e.Emit(); p != nil {
			c.photons = append(c.photons, p)
		}
	}
}

// AddPhoton appends a photon to the run.
func (c *Circuit) AddPhoton(p *Photon) bool {
	if p == nil {
		return false
	}
	c.photons = append(c.photons, p)
	return true
}

// IsFinished reports whether every photon has been absorbed. A circuit with
// no photons has not started and is not finished.
func (c *Circuit) IsFinished() bool {
	if len(c.photons) == 0 {
		return false
	}
	for _, p := range c.photons {
		if !p.absorbed {
			return false
		}
	}
	return true
}

// State reports the lifecycle phase.
func (c *Circuit) State() State {
	switch {
	case len(c.photons) == 0:
		return Idle
	case c.IsFinished():
		return Finished
	}
	return Running
}

// Tick runs one nanosecond of the circuit: every travelling photon moves one
// cell and then interacts with the occupant of its new cell, in emission
// order. Tick does nothing once the circuit is finished.
func (c *Circuit) Tick() {
	if c.IsFinished() {
		return
	}
	c.clock++
	for _, p := range c.photons {
		if p.absorbed {
			continue
		}
		p.Move(c.size.W, c.size.H)
		if p.absorbed {
			continue
		}
		if occ := c.OccupantAt(p.pos); !occ.Empty() {
			p.InteractWith(occ, c.clock)
		}
	}
}

// ActivatedCount returns how many receivers have been activated.
func (c *Circuit) ActivatedCount() int {
	n := 0
	for _, r := range c.receivers {
		if r.activated {
			n++
		}
	}
	return n
}
