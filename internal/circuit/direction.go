package circuit

import "fmt"

// Direction is the heading of a photon.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"North", "East", "South", "West"}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Letter returns the single-letter form used in input files.
func (d Direction) Letter() string {
	if int(d) < len(directionNames) {
		return directionNames[d][:1]
	}
	return "?"
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// ParseDirection accepts N, E, S or W.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("direction must be 'N', 'E', 'S' or 'W'")
}

// Directions lists every heading in table order.
func Directions() []Direction { return []Direction{North, East, South, West} }
