package circuit

import (
	"fmt"

	"laser-circuit/internal/core"
)

const maxLabelled = 10

// Generate builds a random but reproducible circuit from cfg. Component
// counts are capped by the available labels and board cells; every emitter
// gets a pulse sequence.
func Generate(cfg Config) *Circuit {
	c := New(cfg.Width, cfg.Height)
	rng := core.NewRNG(cfg.Seed)

	free := make([]core.Position, 0, c.size.Cells())
	for y := 0; y < c.size.H; y++ {
		for x := 0; x < c.size.W; x++ {
			free = append(free, core.Position{X: x, Y: y})
		}
	}
	rng.Shuffle(free)

	take := func() (core.Position, bool) {
		if len(free) == 0 {
			return core.Position{}, false
		}
		p := free[0]
		free = free[1:]
		return p, true
	}

	for i := 0; i < min(cfg.Emitters, maxLabelled); i++ {
		p, ok := take()
		if !ok {
			return c
		}
		e := NewEmitter(string(rune('A'+i)), p.X, p.Y)
		e.SetPulseSequence(rng.Between(cfg.MinFrequency, cfg.MaxFrequency), Direction(rng.IntN(4)))
		_ = c.AddEmitter(e)
	}
	for i := 0; i < min(cfg.Receivers, maxLabelled); i++ {
		p, ok := take()
		if !ok {
			return c
		}
		_ = c.AddReceiver(NewReceiver(fmt.Sprintf("R%d", i), p.X, p.Y))
	}
	symbols := MirrorSymbols()
	for i := 0; i < cfg.Mirrors; i++ {
		p, ok := take()
		if !ok {
			return c
		}
		_ = c.AddMirror(NewMirror(symbols[rng.IntN(len(symbols))], p.X, p.Y))
	}
	return c
}
