package circuit

import "errors"

var (
	// ErrWrongKind is returned when a registry mutator receives a component
	// of another kind.
	ErrWrongKind = errors.New("wrong component kind")
	// ErrOutOfBounds is returned when either coordinate is off the board.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrPositionTaken is returned when another component occupies the cell.
	ErrPositionTaken = errors.New("position taken")
	// ErrSymbolTaken is returned when the symbol is already used by a
	// component of the same kind.
	ErrSymbolTaken = errors.New("symbol taken")

	// ErrAlreadyRun is returned by Run on a circuit that has emitted.
	ErrAlreadyRun = errors.New("circuit has already run")
	// ErrNoPhotons is returned by Run when emission produced nothing to
	// simulate.
	ErrNoPhotons = errors.New("no photons emitted")
	// ErrTickLimit is returned by Run when the tick ceiling is reached before
	// every photon is absorbed.
	ErrTickLimit = errors.New("tick limit reached")
)

// PlacementError describes a rejected Add call. It unwraps to one of the
// placement sentinels.
type PlacementError struct {
	Err error
	Msg string
}

func (e *PlacementError) Error() string { return e.Msg }
func (e *PlacementError) Unwrap() error { return e.Err }
