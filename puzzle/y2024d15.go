package puzzle

import (
	"iter"
	"slices"
	"strings"

	"github.com/intio/aoc-grid/grid"
)

func init() {
	Register(ID{Year: 2024, Day: 15}, warehouse{})
}

// warehouse drives a robot that pushes boxes around a walled floor.
// Boxes are either single cells (O) or two cells wide ([]).
type warehouse struct{}

func parseWarehouse(input []byte) (*grid.Chart[byte], []grid.Direction, error) {
	text := strings.ReplaceAll(string(input), "\r", "")
	floor, script, ok := strings.Cut(text, "\n\n")
	if !ok {
		return nil, nil, malformed("2024/15: missing move list")
	}
	var moves []grid.Direction
	for _, r := range script {
		if r == '\n' {
			continue
		}
		if !strings.ContainsRune("^>v<", r) {
			return nil, nil, malformed("2024/15: bad move %q", r)
		}
		d, _ := grid.ParseDirection(r)
		moves = append(moves, d)
	}
	return grid.ParseChart(floor), moves, nil
}

var widened = strings.NewReplacer("#", "##", "O", "[]", ".", "..", "@", "@.")

func widen(floor *grid.Chart[byte]) *grid.Chart[byte] {
	lines := grid.Lines(floor)
	for i, line := range lines {
		lines[i] = widened.Replace(line)
	}
	return grid.ParseChart(strings.Join(lines, "\n"))
}

func findRobot(floor *grid.Chart[byte]) (grid.Coord, error) {
	robot, ok := floor.Find(func(b byte) bool { return b == '@' })
	if !ok {
		return grid.Coord{}, malformed("2024/15: no robot")
	}
	return robot, nil
}

// push tries to move the robot one step in direction d, shoving every
// box in the way. It returns the robot's new position.
func push(floor *grid.Chart[byte], robot grid.Coord, d grid.Direction) grid.Coord {
	moving := []grid.Coord{robot}
	queued := map[grid.Coord]bool{robot: true}
	enqueue := func(ps ...grid.Coord) {
		for _, p := range ps {
			if !queued[p] {
				queued[p] = true
				moving = append(moving, p)
			}
		}
	}
	for i := 0; i < len(moving); i++ {
		next := moving[i].Translate(d)
		cell, _ := floor.Get(next)
		switch cell {
		case '.':
		case 'O':
			enqueue(next)
		case '[':
			enqueue(next, next.Translate(grid.Right))
		case ']':
			enqueue(next, next.Translate(grid.Left))
		default:
			// Walls, and anything outside the floor, stop the push.
			return robot
		}
	}

	// Move the farthest cells first so that every cell lands on a
	// freed slot.
	delta := d.Delta()
	slices.SortFunc(moving, func(a, b grid.Coord) int {
		return (b.X*delta.X + b.Y*delta.Y) - (a.X*delta.X + a.Y*delta.Y)
	})
	for _, p := range moving {
		floor.Swap(p, p.Translate(d))
	}
	return robot.Translate(d)
}

func gps(floor *grid.Chart[byte]) int {
	sum := 0
	for p, b := range floor.All() {
		if b == 'O' || b == '[' {
			sum += 100*p.Y + p.X
		}
	}
	return sum
}

func run(floor *grid.Chart[byte], moves []grid.Direction) (int, error) {
	robot, err := findRobot(floor)
	if err != nil {
		return 0, err
	}
	for _, d := range moves {
		robot = push(floor, robot, d)
	}
	return gps(floor), nil
}

func (warehouse) Solve(input []byte) (Answer, error) {
	floor, moves, err := parseWarehouse(input)
	if err != nil {
		return Answer{}, err
	}
	wide := widen(floor)
	narrow, err := run(floor, moves)
	if err != nil {
		return Answer{}, err
	}
	double, err := run(wide, moves)
	if err != nil {
		return Answer{}, err
	}
	return answer(narrow, double), nil
}

func (warehouse) Frames(input []byte) (iter.Seq[Frame], error) {
	start, moves, err := parseWarehouse(input)
	if err != nil {
		return nil, err
	}
	if _, err := findRobot(start); err != nil {
		return nil, err
	}
	return func(yield func(Frame) bool) {
		floor := start.Clone()
		robot, _ := findRobot(floor)
		if !yield(Frame{Step: 0, Rows: grid.Lines(floor)}) {
			return
		}
		for i, d := range moves {
			robot = push(floor, robot, d)
			if !yield(Frame{Step: i + 1, Rows: grid.Lines(floor)}) {
				return
			}
		}
	}, nil
}
