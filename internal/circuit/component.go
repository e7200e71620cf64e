package circuit

import "laser-circuit/internal/core"

// Kind tags the stationary occupant of a cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindEmitter
	KindReceiver
	KindMirror
)

func (k Kind) String() string {
	switch k {
	case KindEmitter:
		return "emitter"
	case KindReceiver:
		return "receiver"
	case KindMirror:
		return "mirror"
	}
	return "none"
}

// Component is a stationary board occupant.
type Component interface {
	Symbol() string
	Position() core.Position
	Kind() Kind
}

// Occupant is the tagged variant stored for every occupied cell. Exactly one
// of the pointers matching Kind is set.
type Occupant struct {
	Kind     Kind
	Emitter  *Emitter
	Receiver *Receiver
	Mirror   *Mirror
}

// Empty reports whether the cell has no occupant.
func (o Occupant) Empty() bool { return o.Kind == KindNone }

// Component returns the occupant as a Component, or nil when empty.
func (o Occupant) Component() Component {
	switch o.Kind {
	case KindEmitter:
		return o.Emitter
	case KindReceiver:
		return o.Receiver
	case KindMirror:
		return o.Mirror
	}
	return nil
}

func occupantOf(c Component) Occupant {
	switch v := c.(type) {
	case *Emitter:
		return Occupant{Kind: KindEmitter, Emitter: v}
	case *Receiver:
		return Occupant{Kind: KindReceiver, Receiver: v}
	case *Mirror:
		return Occupant{Kind: KindMirror, Mirror: v}
	}
	return Occupant{}
}
