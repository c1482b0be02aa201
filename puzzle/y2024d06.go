package puzzle

import (
	"iter"

	"github.com/intio/aoc-grid/grid"
)

func init() {
	Register(ID{Year: 2024, Day: 6}, guardPatrol{})
}

// guardPatrol follows a guard who walks straight ahead and turns right
// whenever an obstruction blocks the way, until it leaves the lab.
type guardPatrol struct{}

type guard struct {
	pos grid.Coord
	dir grid.Direction
}

func parseLab(input []byte) (*grid.Chart[byte], guard, error) {
	lab := grid.ParseChart(string(input))
	start, ok := lab.Find(func(b byte) bool { return b == '^' })
	if !ok {
		return nil, guard{}, malformed("2024/06: no guard in lab")
	}
	lab.Set(start, '.')
	return lab, guard{pos: start, dir: grid.Up}, nil
}

// step moves g one cell forward, or turns it right in place when the
// cell ahead is blocked. It reports false once g walks off the lab.
func (g guard) step(lab *grid.Chart[byte]) (guard, bool) {
	next := g.pos.Translate(g.dir)
	cell, ok := lab.Get(next)
	switch {
	case !ok:
		return g, false
	case cell == '#':
		g.dir = g.dir.TurnRight()
	default:
		g.pos = next
	}
	return g, true
}

// patrol returns the cells g covers, in order of first visit.
func patrol(lab *grid.Chart[byte], g guard) []grid.Coord {
	visited := grid.MakeChart[bool](lab.Width(), lab.Height())
	var path []grid.Coord
	for ok := true; ok; g, ok = g.step(lab) {
		if !*visited.Ref(g.pos) {
			*visited.Ref(g.pos) = true
			path = append(path, g.pos)
		}
	}
	return path
}

// loopScratch remembers (cell, heading) states across many patrols.
// A state belongs to the current patrol when it carries the current
// trial number, so the buffer never needs clearing.
type loopScratch struct {
	seen  []int
	trial int
	width int
}

func newLoopScratch(lab *grid.Chart[byte]) *loopScratch {
	return &loopScratch{
		seen:  make([]int, lab.Width()*lab.Height()*len(grid.Directions())),
		width: lab.Width(),
	}
}

func (s *loopScratch) loops(lab *grid.Chart[byte], g guard) bool {
	s.trial++
	for {
		i := (g.pos.Y*s.width+g.pos.X)*len(grid.Directions()) + int(g.dir)
		if s.seen[i] == s.trial {
			return true
		}
		s.seen[i] = s.trial
		var ok bool
		if g, ok = g.step(lab); !ok {
			return false
		}
	}
}

func (guardPatrol) Solve(input []byte) (Answer, error) {
	lab, g, err := parseLab(input)
	if err != nil {
		return Answer{}, err
	}
	path := patrol(lab, g)

	// Only cells on the original path can change the route; the start
	// is off limits.
	scratch := newLoopScratch(lab)
	traps := 0
	for _, p := range path[1:] {
		lab.Set(p, '#')
		if scratch.loops(lab, g) {
			traps++
		}
		lab.Set(p, '.')
	}
	return answer(len(path), traps), nil
}

func (guardPatrol) Frames(input []byte) (iter.Seq[Frame], error) {
	lab, start, err := parseLab(input)
	if err != nil {
		return nil, err
	}
	return func(yield func(Frame) bool) {
		g := start
		trail := lab.Clone()
		for step, ok := 0, true; ok; step++ {
			trail.Set(g.pos, 'X')
			view := trail.Clone()
			view.Set(g.pos, g.dir.String()[0])
			if !yield(Frame{Step: step, Rows: grid.Lines(view)}) {
				return
			}
			g, ok = g.step(lab)
		}
	}, nil
}
