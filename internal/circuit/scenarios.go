package circuit

import (
	"fmt"
	"sort"

	"laser-circuit/internal/core"
)

// Builder constructs a circuit for a named scenario.
type Builder func(cfg Config) (*Circuit, error)

var scenarios = map[string]Builder{
	"line":   lineScenario,
	"edge":   edgeScenario,
	"mirror": mirrorScenario,
	"demo":   demoScenario,
	"random": func(cfg Config) (*Circuit, error) { return Generate(cfg), nil },
}

// Scenario builds the named built-in circuit.
func Scenario(name string, cfg Config) (*Circuit, error) {
	b, ok := ScenarioBuilder(name)
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	return b(cfg)
}

// ScenarioBuilder returns the builder registered under name.
func ScenarioBuilder(name string) (Builder, bool) {
	b, ok := scenarios[name]
	return b, ok
}

// ScenarioNames lists the built-in scenarios in name order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func emitter(symbol string, x, y, frequency int, dir Direction) *Emitter {
	e := NewEmitter(symbol, x, y)
	e.SetPulseSequence(frequency, dir)
	return e
}

func assemble(w, h int, comps ...Component) (*Circuit, error) {
	c := New(w, h)
	for _, comp := range comps {
		if err := c.Place(comp); err != nil {
			return nil, fmt.Errorf("place %s %s: %w", comp.Kind(), comp.Symbol(), err)
		}
	}
	return c, nil
}

// lineScenario: a single photon crossing a 5x1 board into R0 at tick 4.
func lineScenario(Config) (*Circuit, error) {
	return assemble(5, 1,
		emitter("A", 0, 0, 3, East),
		NewReceiver("R0", 4, 0),
	)
}

// edgeScenario: a photon leaving the board on its first move.
func edgeScenario(Config) (*Circuit, error) {
	return assemble(3, 1, emitter("A", 0, 0, 3, West))
}

// mirrorScenario: a photon turned north by '/' into R0.
func mirrorScenario(Config) (*Circuit, error) {
	return assemble(3, 2,
		emitter("A", 0, 1, 3, East),
		NewMirror("/", 1, 1),
		NewReceiver("R0", 1, 0),
	)
}

func demoScenario(Config) (*Circuit, error) {
	return assemble(18, 6,
		emitter("A", 0, 2, 500, East),
		emitter("B", 17, 0, 650, West),
		emitter("C", 14, 5, 430, North),
		NewReceiver("R0", 10, 4),
		NewReceiver("R1", 5, 5),
		NewReceiver("R2", 3, 1),
		NewMirror("\\", 5, 2),
		NewMirror("/", 10, 0),
		NewMirror("<", 14, 1),
		NewMirror("v", 8, 3),
	)
}

// Session adapts a scenario to core.Sim so the viewers can drive it. The
// first Step emits photons; later steps tick.
type Session struct {
	name  string
	cfg   Config
	build Builder
	c     *Circuit
	err   error
}

// NewSession builds the circuit immediately with cfg.Seed.
func NewSession(name string, cfg Config, build Builder) *Session {
	s := &Session{name: name, cfg: cfg, build: build}
	s.Reset(0)
	return s
}

// SessionFor wraps an already assembled circuit. Reset leaves it unchanged.
func SessionFor(name string, c *Circuit) *Session {
	return &Session{name: name, c: c}
}

func (s *Session) Name() string      { return s.name }
func (s *Session) Size() core.Size   { return s.c.Size() }
func (s *Session) Circuit() *Circuit { return s.c }
func (s *Session) Err() error        { return s.err }
func (s *Session) Cells() []uint8    { return s.c.Cells() }
func (s *Session) Done() bool        { return s.c.IsFinished() }

// Board returns the character projection of the current circuit.
func (s *Session) Board() *core.RuneGrid { return s.c.Board() }

// Reset rebuilds the circuit. A non-zero seed overrides the configured one.
func (s *Session) Reset(seed int64) {
	if s.build == nil {
		return
	}
	cfg := s.cfg
	if seed != 0 {
		cfg.Seed = seed
	}
	c, err := s.build(cfg)
	if err != nil {
		s.err = err
		c = New(cfg.Width, cfg.Height)
	}
	s.c = c
}

// Step emits photons on the first call and ticks afterwards.
func (s *Session) Step() {
	if s.c.State() == Idle {
		s.c.EmitPhotons()
		return
	}
	s.c.Tick()
}

// Status summarises the run for the viewer panels.
func (s *Session) Status() core.StatusSnapshot {
	c := s.c
	board := core.StatGroup{
		Name: "Circuit",
		Stats: []core.Stat{
			core.TextStat("size", "Size", fmt.Sprintf("%dx%d", c.Width(), c.Height())),
			core.TextStat("clock", "Clock", fmt.Sprintf("%dns", c.Clock())),
			core.TextStat("state", "State", c.State().String()),
			core.TextStat("activated", "Activated", fmt.Sprintf("%d/%d", c.ActivatedCount(), len(c.receivers))),
		},
	}
	recv := core.StatGroup{Name: "Receivers"}
	for _, r := range c.receivers {
		value := "-"
		if r.activated {
			value = fmt.Sprintf("%dns, %dTHz", r.activationTime, r.energy)
		}
		recv.Stats = append(recv.Stats, core.TextStat(r.symbol, r.symbol, value))
	}
	return core.StatusSnapshot{Groups: []core.StatGroup{board, recv}}
}

func init() {
	for name, b := range scenarios {
		b := b
		name := name
		core.Register(name, func(cfg map[string]string) core.Sim {
			return NewSession(name, FromMap(cfg), b)
		})
	}
}
