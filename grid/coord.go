// Package grid holds the primitives shared by the grid puzzles: a
// position (Coord), a heading (Direction) and bounded 2D storage
// (Chart).
//
// Reads never fail: probing a coordinate outside a Chart reports the
// cell as absent, so searches can look at the neighbours of an edge
// cell without checking bounds first.
package grid

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Coord is a position on the 2D integer grid. X grows to the right, Y
// grows downwards.
type Coord struct {
	X, Y int
}

// XY is shorthand for Coord{X: x, Y: y}.
func XY(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Translate returns the coordinate one step away from c in direction d.
func (c Coord) Translate(d Direction) Coord {
	return c.Add(d.Delta())
}

// Offset returns c moved by (dx, dy).
func (c Coord) Offset(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// Manhattan returns |dx| + |dy| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// RotateRight treats c as a vector and turns it a quarter clockwise
// around the origin: the X component follows Right turned right, the Y
// component follows Down turned right.
func (c Coord) RotateRight() Coord {
	return Right.TurnRight().Delta().Scale(c.X).
		Add(Down.TurnRight().Delta().Scale(c.Y))
}

// RotateLeft is the inverse of RotateRight.
func (c Coord) RotateLeft() Coord {
	return Right.TurnLeft().Delta().Scale(c.X).
		Add(Down.TurnLeft().Delta().Scale(c.Y))
}

// Neighbors yields the four orthogonal neighbours of c in the order of
// Directions.
func (c Coord) Neighbors() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, d := range Directions() {
			if !yield(c.Translate(d)) {
				return
			}
		}
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// RowMajor orders coordinates by row, then by column. It fits
// slices.SortFunc.
func RowMajor(a, b Coord) int {
	if a.Y != b.Y {
		return compare(a.Y, b.Y)
	}
	return compare(a.X, b.X)
}

// ColumnMajor orders coordinates by column, then by row.
func ColumnMajor(a, b Coord) int {
	if a.X != b.X {
		return compare(a.X, b.X)
	}
	return compare(a.Y, b.Y)
}

func compare[T constraints.Signed](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
