package grid

// Direction is a unit step on the grid along a single (horizontal or
// vertical) axis. Or in plain words: up, right, down or left.
//
// Y grows downwards, so Up decreases Y.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions returns the four directions in clockwise order, starting
// with Up.
func Directions() [4]Direction {
	return [4]Direction{Up, Right, Down, Left}
}

// TurnRight rotates d by 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// TurnLeft rotates d by 90 degrees counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// Reverse rotates d by 180 degrees.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta returns the unit offset of a single step in direction d.
func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{Y: -1}
	case Right:
		return Coord{X: +1}
	case Down:
		return Coord{Y: +1}
	case Left:
		return Coord{X: -1}
	}
	panic("grid: invalid direction")
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

// ParseDirection recognizes arrows (^ > v <), screen letters (U R D L)
// and compass letters (N E S W).
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^', 'U', 'N':
		return Up, true
	case '>', 'R', 'E':
		return Right, true
	case 'v', 'D', 'S':
		return Down, true
	case '<', 'L', 'W':
		return Left, true
	}
	return 0, false
}
