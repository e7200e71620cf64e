package core

import "time"

// Pacer releases simulation ticks at a steady ticks-per-second rate for the
// interactive viewers. The headless runner never uses it.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given TPS. The first call to
// Ready always releases a tick.
func NewPacer(tps int) *Pacer {
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the tick rate. Non-positive rates fall back to 10.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	p.step = time.Second / time.Duration(tps)
}

// Step returns the interval between ticks.
func (p *Pacer) Step() time.Duration { return p.step }

// Ready reports whether a tick is due at now. At most one tick is released
// per call; a backlog drains over subsequent calls.
func (p *Pacer) Ready(now time.Time) bool {
	if p.last.IsZero() {
		p.last = now
	}
	if now.After(p.last) {
		p.accumulator += now.Sub(p.last)
		p.last = now
	}
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
