package puzzle

import (
	"github.com/intio/aoc-grid/grid"
)

func init() {
	Register(ID{Year: 2024, Day: 10}, trailheads{})
}

// trailheads scores hiking trails on a topographic map. A trail starts
// at height 0, ends at height 9 and climbs exactly 1 per step.
type trailheads struct{}

const impassable = -1

func parseTopo(input []byte) (*grid.Chart[int], error) {
	raw := grid.ParseChart(string(input))
	if raw.Height() == 0 {
		return nil, malformed("2024/10: empty map")
	}
	topo := grid.MakeChart[int](raw.Width(), raw.Height())
	for p, b := range raw.All() {
		switch {
		case b >= '0' && b <= '9':
			topo.Set(p, int(b-'0'))
		case b == '.':
			topo.Set(p, impassable)
		default:
			return nil, malformed("2024/10: bad height %q at %v", b, p)
		}
	}
	return topo, nil
}

// uphill yields the neighbours of p exactly one higher than p.
func uphill(topo *grid.Chart[int], p grid.Coord, yield func(grid.Coord)) {
	h, _ := topo.Get(p)
	if h == impassable {
		return
	}
	for n := range p.Neighbors() {
		if nh, ok := topo.Get(n); ok && nh == h+1 {
			yield(n)
		}
	}
}

// trailScratch is reused for every trailhead so that the search does
// not allocate per start.
type trailScratch struct {
	stamp *grid.Chart[int]
	trial int
	stack []grid.Coord
}

// peaks counts the distinct height 9 cells reachable from start.
func (s *trailScratch) peaks(topo *grid.Chart[int], start grid.Coord) int {
	s.trial++
	s.stack = append(s.stack[:0], start)
	s.stamp.Set(start, s.trial)
	n := 0
	for len(s.stack) > 0 {
		p := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if h, _ := topo.Get(p); h == 9 {
			n++
		}
		uphill(topo, p, func(next grid.Coord) {
			if *s.stamp.Ref(next) != s.trial {
				s.stamp.Set(next, s.trial)
				s.stack = append(s.stack, next)
			}
		})
	}
	return n
}

// ratings counts, for every cell, the distinct trails leading from it
// to any height 9 cell. Cells are filled from the top down.
func ratings(topo *grid.Chart[int]) *grid.Chart[int] {
	ways := grid.MakeChart[int](topo.Width(), topo.Height())
	for h := 9; h >= 0; h-- {
		for p, ph := range topo.All() {
			if ph != h {
				continue
			}
			if h == 9 {
				ways.Set(p, 1)
				continue
			}
			uphill(topo, p, func(next grid.Coord) {
				w, _ := ways.Get(next)
				*ways.Ref(p) += w
			})
		}
	}
	return ways
}

func (trailheads) Solve(input []byte) (Answer, error) {
	topo, err := parseTopo(input)
	if err != nil {
		return Answer{}, err
	}
	scratch := &trailScratch{stamp: grid.MakeChart[int](topo.Width(), topo.Height())}
	ways := ratings(topo)

	score, rating := 0, 0
	for p, h := range topo.All() {
		if h != 0 {
			continue
		}
		score += scratch.peaks(topo, p)
		w, _ := ways.Get(p)
		rating += w
	}
	return answer(score, rating), nil
}
