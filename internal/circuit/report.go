package circuit

import (
	"cmp"
	"slices"
)

// DefaultBatch is the number of ticks run between observations.
const DefaultBatch = 5

// RunOptions controls Run. All fields are optional.
type RunOptions struct {
	// Batch is the number of ticks between OnBatch calls.
	Batch int
	// MaxTicks stops a run that has not finished by this clock value. Zero
	// means no ceiling.
	MaxTicks int
	// OnEmit is called once after photons are emitted.
	OnEmit func(c *Circuit)
	// OnBatch is called after every batch of ticks.
	OnBatch func(c *Circuit)
}

// Report holds the results of a finished run.
type Report struct {
	Clock      int
	Activation []*Receiver
	Energy     []*Receiver
}

// Run emits photons and ticks until every photon is absorbed, then returns
// the activation and energy reports. A run stopped by MaxTicks returns the
// reports so far together with ErrTickLimit.
func (c *Circuit) Run(opts RunOptions) (Report, error) {
	if c.State() != Idle {
		return Report{}, ErrAlreadyRun
	}
	batch := opts.Batch
	if batch <= 0 {
		batch = DefaultBatch
	}

	c.EmitPhotons()
	if len(c.photons) == 0 {
		return Report{}, ErrNoPhotons
	}
	if opts.OnEmit != nil {
		opts.OnEmit(c)
	}

	for !c.IsFinished() {
		if opts.MaxTicks > 0 && c.clock >= opts.MaxTicks {
			return c.Report(), ErrTickLimit
		}
		for i := 0; i < batch; i++ {
			if opts.MaxTicks > 0 && c.clock >= opts.MaxTicks {
				break
			}
			c.Tick()
		}
		if opts.OnBatch != nil {
			opts.OnBatch(c)
		}
	}
	return c.Report(), nil
}

// Report builds both receiver orderings for the current state.
func (c *Circuit) Report() Report {
	return Report{
		Clock:      c.clock,
		Activation: c.ActivationReport(),
		Energy:     c.EnergyReport(),
	}
}

// ActivationReport lists activated receivers by activation time, earliest
// first, breaking ties by symbol.
func (c *Circuit) ActivationReport() []*Receiver {
	out := c.activated()
	slices.SortFunc(out, func(a, b *Receiver) int {
		return cmp.Or(
			cmp.Compare(a.activationTime, b.activationTime),
			cmp.Compare(a.symbol, b.symbol),
		)
	})
	return out
}

// EnergyReport lists activated receivers by absorbed energy, highest first,
// breaking ties by symbol.
func (c *Circuit) EnergyReport() []*Receiver {
	out := c.activated()
	slices.SortFunc(out, func(a, b *Receiver) int {
		return cmp.Or(
			cmp.Compare(b.energy, a.energy),
			cmp.Compare(a.symbol, b.symbol),
		)
	})
	return out
}

func (c *Circuit) activated() []*Receiver {
	out := make([]*Receiver, 0, len(c.receivers))
	for _, r := range c.receivers {
		if r.activated {
			out = append(out, r)
		}
	}
	return out
}
