package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"laser-circuit/internal/circuit"
)

// Placement is a parsed component together with its source line.
type Placement struct {
	Line      int
	Component circuit.Component
}

// PulseLine is a parsed pulse together with its source line.
type PulseLine struct {
	Line int
	Pulse
}

// Layout is a parsed circuit description. Nothing is validated against the
// board until Build.
type Layout struct {
	Width      int
	Height     int
	Placements []Placement
	Pulses     []PulseLine
}

// LoadText reads the line format:
//
//	# comment
//	18 6
//	emitter A 0 2
//	receiver R0 10 4
//	mirror / 5 2
//	pulse A 500 E
//
// The first significant line is the board size.
func LoadText(r io.Reader) (*Layout, error) {
	l := &Layout{}
	sized := false
	err := scanLines(r, func(n int, line string) error {
		if !sized {
			w, h, err := ParseSize(line)
			if err != nil {
				return err
			}
			l.Width, l.Height, sized = w, h, true
			return nil
		}
		keyword, rest, _ := strings.Cut(line, " ")
		switch keyword {
		case "emitter":
			e, err := ParseEmitter(rest)
			if err != nil {
				return err
			}
			l.Placements = append(l.Placements, Placement{Line: n, Component: e})
		case "receiver":
			r, err := ParseReceiver(rest)
			if err != nil {
				return err
			}
			l.Placements = append(l.Placements, Placement{Line: n, Component: r})
		case "mirror":
			m, err := ParseMirror(rest)
			if err != nil {
				return err
			}
			l.Placements = append(l.Placements, Placement{Line: n, Component: m})
		case "pulse":
			p, err := ParsePulseSequence(rest)
			if err != nil {
				return err
			}
			l.Pulses = append(l.Pulses, PulseLine{Line: n, Pulse: p})
		default:
			return fmt.Errorf("unknown keyword %q", keyword)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !sized {
		return nil, fmt.Errorf("missing board size")
	}
	return l, nil
}

// LoadPulses reads pulse_sequence lines, one "<symbol> <frequency>
// <direction>" per line.
func LoadPulses(r io.Reader) ([]PulseLine, error) {
	var out []PulseLine
	err := scanLines(r, func(n int, line string) error {
		p, err := ParsePulseSequence(line)
		if err != nil {
			return err
		}
		out = append(out, PulseLine{Line: n, Pulse: p})
		return nil
	})
	return out, err
}

func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(n, line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Build places every component and then applies the pulses. The first
// failure is reported with its source line.
func (l *Layout) Build(log *zap.Logger) (*circuit.Circuit, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := circuit.New(l.Width, l.Height)
	for _, p := range l.Placements {
		if err := c.Place(p.Component); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.Line, err)
		}
		log.Debug("placed component",
			zap.String("kind", p.Component.Kind().String()),
			zap.String("symbol", p.Component.Symbol()),
			zap.Stringer("pos", p.Component.Position()),
		)
	}
	if err := ApplyPulses(c, l.Pulses); err != nil {
		return nil, err
	}
	log.Info("circuit built",
		zap.Int("width", l.Width),
		zap.Int("height", l.Height),
		zap.Int("emitters", len(c.Emitters())),
		zap.Int("receivers", len(c.Receivers())),
		zap.Int("mirrors", len(c.Mirrors())),
	)
	return c, nil
}

// ApplyPulses sets the pulse sequence of each named emitter. A later line for
// the same emitter replaces the earlier one.
func ApplyPulses(c *circuit.Circuit, pulses []PulseLine) error {
	for _, p := range pulses {
		e, ok := c.Emitter(p.Symbol)
		if !ok {
			return fmt.Errorf("line %d: emitter '%s' does not exist", p.Line, p.Symbol)
		}
		e.SetPulseSequence(p.Frequency, p.Direction)
	}
	return nil
}
