package circuit

import (
	"testing"

	"laser-circuit/internal/core"
)

func TestPhotonMovesOneCellPerCall(t *testing.T) {
	p := NewPhoton(core.Position{X: 1, Y: 1}, South, 10)
	p.Move(3, 3)
	if got := p.Position(); got != (core.Position{X: 1, Y: 2}) {
		t.Fatalf("position after move = %v, want (1, 2)", got)
	}
	if p.Absorbed() {
		t.Fatal("photon absorbed inside the board")
	}
	if path := p.Path(); len(path) != 1 || path[0] != (core.Position{X: 1, Y: 2}) {
		t.Fatalf("path = %v", path)
	}
}

func TestPhotonEdgeAbsorptionKeepsLastCell(t *testing.T) {
	for _, d := range Directions() {
		p := NewPhoton(core.Position{X: 0, Y: 0}, d, 1)
		p.Move(1, 1)
		if !p.Absorbed() {
			t.Fatalf("%v: photon on a 1x1 board must leave and be absorbed", d)
		}
		if p.Position() != (core.Position{}) {
			t.Fatalf("%v: absorbed photon moved to %v", d, p.Position())
		}
		p.Move(1, 1)
		if len(p.Path()) != 0 {
			t.Fatalf("%v: absorbed photon kept moving", d)
		}
	}
}

func TestPhotonSetDirectionIgnoredOnceAbsorbed(t *testing.T) {
	p := NewPhoton(core.Position{}, West, 1)
	p.SetDirection(East)
	if p.Direction() != East {
		t.Fatalf("direction = %v, want East", p.Direction())
	}
	p.Move(1, 1)
	p.SetDirection(North)
	if p.Direction() != East {
		t.Fatalf("absorbed photon direction changed to %v", p.Direction())
	}
}

func TestInteractWithAbsorbedPhotonIsNoop(t *testing.T) {
	r := NewReceiver("R0", 0, 0)
	p := NewPhoton(core.Position{}, North, 9)
	p.Move(1, 1) // leaves the board
	p.InteractWith(Occupant{Kind: KindReceiver, Receiver: r}, 3)
	p.InteractWith(Occupant{Kind: KindMirror, Mirror: NewMirror("/", 0, 0)}, 3)

	if r.Activated() || r.Energy() != 0 {
		t.Fatalf("receiver credited by an absorbed photon: activated=%v energy=%d", r.Activated(), r.Energy())
	}
	if p.Direction() != North {
		t.Fatalf("absorbed photon reflected to %v", p.Direction())
	}
}

func TestInteractWithEmitterAbsorbs(t *testing.T) {
	e := NewEmitter("A", 0, 0)
	p := NewPhoton(core.Position{}, East, 4)
	p.InteractWith(Occupant{Kind: KindEmitter, Emitter: e}, 1)
	if !p.Absorbed() {
		t.Fatal("photon meeting an emitter must be absorbed")
	}
}

func TestReceiverKeepsFirstActivationTime(t *testing.T) {
	r := NewReceiver("R3", 2, 2)
	first := NewPhoton(core.Position{}, East, 5)
	second := NewPhoton(core.Position{}, East, 7)

	first.InteractWith(Occupant{Kind: KindReceiver, Receiver: r}, 4)
	second.InteractWith(Occupant{Kind: KindReceiver, Receiver: r}, 9)

	if !first.Absorbed() || !second.Absorbed() {
		t.Fatal("receiver must absorb every photon")
	}
	if r.ActivationTime() != 4 {
		t.Fatalf("activation time = %d, want 4", r.ActivationTime())
	}
	if r.Energy() != 12 || r.PhotonsAbsorbed() != 2 {
		t.Fatalf("energy=%d photons=%d, want 12 and 2", r.Energy(), r.PhotonsAbsorbed())
	}
	if got := r.String(); got != "R3: 12THz (2)" {
		t.Fatalf("String() = %q", got)
	}
	if r.BoardRune() != '3' {
		t.Fatalf("BoardRune() = %q, want '3'", r.BoardRune())
	}
}

func TestEmitterWithoutPulseEmitsNothing(t *testing.T) {
	e := NewEmitter("B", 1, 1)
	if p := e.Emit(); p != nil {
		t.Fatal("emitter without pulse sequence produced a photon")
	}
	if e.Emitted() {
		t.Fatal("emitter marked as emitted without a photon")
	}

	e.SetPulseSequence(250, South)
	p := e.Emit()
	if p == nil {
		t.Fatal("emitter with pulse sequence produced nothing")
	}
	if p.Position() != e.Position() || p.Direction() != South || p.Frequency() != 250 {
		t.Fatalf("photon = %v %v %d", p.Position(), p.Direction(), p.Frequency())
	}
	if got := e.String(); got != "B: 250THz, South" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions() {
		got, err := ParseDirection(d.Letter())
		if err != nil || got != d {
			t.Fatalf("ParseDirection(%q) = %v, %v", d.Letter(), got, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Fatal("expected error for long direction name")
	}
}
