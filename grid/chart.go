package grid

import (
	"iter"
	"strings"
)

// Chart is a rectangular 2D store of cells addressed by Coord. Row 0 is
// the top row.
type Chart[T any] struct {
	rows  [][]T
	width int
}

// NewChart builds a Chart from row-major rows. The rows are copied, so
// later changes to either side are not shared. The width is the length
// of the first row; rows of a different length are not checked for.
func NewChart[T any](rows [][]T) *Chart[T] {
	c := &Chart[T]{rows: make([][]T, len(rows))}
	if len(rows) > 0 {
		c.width = len(rows[0])
	}
	for y, row := range rows {
		c.rows[y] = append([]T(nil), row...)
	}
	return c
}

// MakeChart returns a width by height chart of zero values.
func MakeChart[T any](width, height int) *Chart[T] {
	c := &Chart[T]{rows: make([][]T, height), width: width}
	for y := range c.rows {
		c.rows[y] = make([]T, width)
	}
	return c
}

// ParseChart builds a byte Chart from newline separated text. Carriage
// returns and trailing blank lines are dropped.
func ParseChart(text string) *Chart[byte] {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return NewChart[byte](nil)
	}
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}
	return NewChart(rows)
}

func (c *Chart[T]) Width() int  { return c.width }
func (c *Chart[T]) Height() int { return len(c.rows) }

// Contains reports whether p addresses a stored cell.
func (c *Chart[T]) Contains(p Coord) bool {
	if p.X < 0 || p.Y < 0 || p.X >= c.width || p.Y >= len(c.rows) {
		return false
	}
	return p.X < len(c.rows[p.Y])
}

// Get returns the cell at p. The second result is false, and the value
// is the zero T, when p lies outside the chart.
func (c *Chart[T]) Get(p Coord) (T, bool) {
	if !c.Contains(p) {
		var zero T
		return zero, false
	}
	return c.rows[p.Y][p.X], true
}

// Ref returns a pointer to the cell at p, or nil when p lies outside
// the chart.
func (c *Chart[T]) Ref(p Coord) *T {
	if !c.Contains(p) {
		return nil
	}
	return &c.rows[p.Y][p.X]
}

// Set overwrites the cell at p. It panics when p lies outside the
// chart.
func (c *Chart[T]) Set(p Coord, v T) {
	c.rows[p.Y][p.X] = v
}

// Swap exchanges the cells at a and b. Both must lie inside the chart.
func (c *Chart[T]) Swap(a, b Coord) {
	c.rows[a.Y][a.X], c.rows[b.Y][b.X] = c.rows[b.Y][b.X], c.rows[a.Y][a.X]
}

// All yields every cell in row-major order.
func (c *Chart[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for y, row := range c.rows {
			for x, v := range row[:min(len(row), c.width)] {
				if !yield(Coord{X: x, Y: y}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first cell, in row-major order, that matches.
func (c *Chart[T]) Find(match func(T) bool) (Coord, bool) {
	for p, v := range c.All() {
		if match(v) {
			return p, true
		}
	}
	return Coord{}, false
}

// Clone returns a deep copy of c.
func (c *Chart[T]) Clone() *Chart[T] {
	return NewChart(c.rows)
}

// Lines renders a byte chart back into text lines.
func Lines(c *Chart[byte]) []string {
	lines := make([]string, len(c.rows))
	for y, row := range c.rows {
		lines[y] = string(row)
	}
	return lines
}
