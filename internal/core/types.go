package core

// Size describes the dimensions of a circuit board.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies on a board of this size. Both coordinates
// must be in range.
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Cells returns the number of cells on the board.
func (s Size) Cells() int { return s.W * s.H }

// Sim is the contract the viewers drive. Step advances the run by one tick;
// Cells exposes a per-cell occupant code buffer for painting.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Done() bool
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available scenario factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}
