package puzzle

import (
	"github.com/intio/aoc-grid/grid"
)

func init() {
	Register(ID{Year: 2024, Day: 12}, gardenRegions{})
}

// gardenRegions prices fences around regions of the same plant.
type gardenRegions struct{}

type region struct {
	plant     byte
	area      int
	perimeter int
	sides     int
}

// regions flood fills every region of garden, in row-major order of
// their first cell.
func regions(garden *grid.Chart[byte]) []region {
	claimed := grid.MakeChart[bool](garden.Width(), garden.Height())
	same := func(p grid.Coord, plant byte) bool {
		v, ok := garden.Get(p)
		return ok && v == plant
	}

	var out []region
	var queue []grid.Coord
	for seed, plant := range garden.All() {
		if done, _ := claimed.Get(seed); done {
			continue
		}
		r := region{plant: plant}
		claimed.Set(seed, true)
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			r.area++
			for _, d := range grid.Directions() {
				n := p.Translate(d)
				if !same(n, plant) {
					r.perimeter++
				} else if !*claimed.Ref(n) {
					claimed.Set(n, true)
					queue = append(queue, n)
				}

				// A region has as many sides as corners. Look at the
				// corner between d and the next heading clockwise.
				e := d.TurnRight()
				a, b := same(n, plant), same(p.Translate(e), plant)
				diagonal := same(n.Translate(e), plant)
				if (!a && !b) || (a && b && !diagonal) {
					r.sides++
				}
			}
		}
		out = append(out, r)
	}
	return out
}

func (gardenRegions) Solve(input []byte) (Answer, error) {
	garden := grid.ParseChart(string(input))
	if garden.Height() == 0 {
		return Answer{}, malformed("2024/12: empty garden")
	}
	fence, bulk := 0, 0
	for _, r := range regions(garden) {
		fence += r.area * r.perimeter
		bulk += r.area * r.sides
	}
	return answer(fence, bulk), nil
}
