package input

import (
	"errors"
	"strconv"
	"strings"

	"laser-circuit/internal/circuit"
)

// Pulse is a parsed pulse_sequence line.
type Pulse struct {
	Symbol    string
	Frequency int
	Direction circuit.Direction
}

// ParseSize parses "<width> <height>". Both must be positive integers.
func ParseSize(line string) (w, h int, err error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return 0, 0, errors.New("<width> <height>")
	}
	if w, err = strconv.Atoi(tokens[0]); err != nil {
		return 0, 0, errors.New("width is not an integer")
	}
	if h, err = strconv.Atoi(tokens[1]); err != nil {
		return 0, 0, errors.New("height is not an integer")
	}
	if w <= 0 {
		return 0, 0, errors.New("width must be greater than zero")
	}
	if h <= 0 {
		return 0, 0, errors.New("height must be greater than zero")
	}
	return w, h, nil
}

// ParseEmitter parses "<symbol> <x> <y>" with a symbol between A and J.
func ParseEmitter(line string) (*circuit.Emitter, error) {
	sym, x, y, err := parsePlacement(line, circuit.IsEmitterSymbol, "symbol is not between 'A'-'J'")
	if err != nil {
		return nil, err
	}
	return circuit.NewEmitter(sym, x, y), nil
}

// ParseReceiver parses "<symbol> <x> <y>" with a symbol between R0 and R9.
func ParseReceiver(line string) (*circuit.Receiver, error) {
	sym, x, y, err := parsePlacement(line, circuit.IsReceiverSymbol, "symbol is not between R0-R9")
	if err != nil {
		return nil, err
	}
	return circuit.NewReceiver(sym, x, y), nil
}

// ParseMirror parses "<symbol> <x> <y>" with one of the six mirror symbols.
func ParseMirror(line string) (*circuit.Mirror, error) {
	sym, x, y, err := parsePlacement(line, circuit.IsMirrorSymbol, `symbol must be '/', '\', '>', '<', '^' or 'v'`)
	if err != nil {
		return nil, err
	}
	return circuit.NewMirror(sym, x, y), nil
}

func parsePlacement(line string, valid func(string) bool, symbolMsg string) (string, int, int, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return "", 0, 0, errors.New("<symbol> <x> <y>")
	}
	if !valid(tokens[0]) {
		return "", 0, 0, errors.New(symbolMsg)
	}
	x, err := strconv.Atoi(tokens[1])
	if err != nil {
		return "", 0, 0, errors.New("x is not an integer")
	}
	y, err := strconv.Atoi(tokens[2])
	if err != nil {
		return "", 0, 0, errors.New("y is not an integer")
	}
	if x < 0 {
		return "", 0, 0, errors.New("x cannot be negative")
	}
	if y < 0 {
		return "", 0, 0, errors.New("y cannot be negative")
	}
	return tokens[0], x, y, nil
}

// ParsePulseSequence parses "<symbol> <frequency> <direction>".
func ParsePulseSequence(line string) (Pulse, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return Pulse{}, errors.New("<symbol> <frequency> <direction>")
	}
	if !circuit.IsEmitterSymbol(tokens[0]) {
		return Pulse{}, errors.New("symbol is not between 'A'-'J'")
	}
	freq, err := strconv.Atoi(tokens[1])
	if err != nil {
		return Pulse{}, errors.New("frequency is not an integer")
	}
	if freq <= 0 {
		return Pulse{}, errors.New("frequency must be greater than zero")
	}
	dir, err := circuit.ParseDirection(tokens[2])
	if err != nil {
		return Pulse{}, err
	}
	return Pulse{Symbol: tokens[0], Frequency: freq, Direction: dir}, nil
}
