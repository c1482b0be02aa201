package puzzle

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intio/aoc-grid/grid"
)

const labSample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

const topoSample = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
`

const gardenSample = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
`

const warehouseSample = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

const wideWarehouseSample = `#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
`

func TestSolve2024(t *testing.T) {
	tests := []struct {
		name  string
		id    ID
		input string
		want  Answer
	}{
		{"guard", ID{2024, 6}, labSample, Answer{"41", "6"}},
		{"trails", ID{2024, 10}, topoSample, Answer{"36", "81"}},
		{"trails small", ID{2024, 10}, "0123\n1234\n8765\n9876\n", Answer{"1", "16"}},
		{"garden small", ID{2024, 12}, "AAAA\nBBCD\nBBCC\nEEEC\n", Answer{"140", "80"}},
		{"garden nested", ID{2024, 12}, "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n", Answer{"772", "436"}},
		{"garden E", ID{2024, 12}, "EEEEE\nEXXXX\nEEEEE\nEXXXX\nEEEEE\n", Answer{"692", "236"}},
		{"garden diagonal", ID{2024, 12}, "AAAAAA\nAAABBA\nAAABBA\nABBAAA\nABBAAA\nAAAAAA\n", Answer{"1184", "368"}},
		{"garden large", ID{2024, 12}, gardenSample, Answer{"1930", "1206"}},
		{"warehouse", ID{2024, 15}, warehouseSample, Answer{"2028", "1751"}},
		{"warehouse wide", ID{2024, 15}, wideWarehouseSample, Answer{"908", "618"}},
		{"warehouse crlf", ID{2024, 15}, strings.ReplaceAll(warehouseSample, "\n", "\r\n"), Answer{"2028", "1751"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, solve(t, tt.id, tt.input))
		})
	}
}

func TestWidenedPushMovesBoxTrees(t *testing.T) {
	floor, moves, err := parseWarehouse([]byte(wideWarehouseSample))
	require.NoError(t, err)
	wide := widen(floor)
	_, err = run(wide, moves)
	require.NoError(t, err)

	want := []string{
		"##############",
		"##...[].##..##",
		"##...@.[]...##",
		"##....[]....##",
		"##..........##",
		"##..........##",
		"##############",
	}
	if diff := cmp.Diff(want, grid.Lines(wide)); diff != "" {
		t.Errorf("final floor mismatch (-want +got):\n%s", diff)
	}
}

func TestGuardFrames(t *testing.T) {
	var a Animator = guardPatrol{}
	seq, err := a.Frames([]byte(labSample))
	require.NoError(t, err)

	frames := slices.Collect(seq)
	require.Len(t, frames, 55)
	assert.Equal(t, ".#..^.....", frames[0].Rows[6])
	for i, f := range frames {
		assert.Equal(t, i, f.Step)
	}

	// The sequence starts over from the initial lab every time.
	again := slices.Collect(seq)
	if diff := cmp.Diff(frames, again); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}

	last := frames[len(frames)-1].Rows
	marked := 0
	for _, row := range last {
		marked += strings.Count(row, "X")
	}
	// 41 cells visited; the guard's own cell shows its heading.
	assert.Equal(t, 40, marked)
	assert.Equal(t, "......#v..", last[9])
}

func TestWarehouseFrames(t *testing.T) {
	var a Animator = warehouse{}
	seq, err := a.Frames([]byte(warehouseSample))
	require.NoError(t, err)

	frames := slices.Collect(seq)
	require.Len(t, frames, 16)
	want := []string{
		"########",
		"#....OO#",
		"##.....#",
		"#.....O#",
		"#.#O@..#",
		"#...O..#",
		"#...O..#",
		"########",
	}
	if diff := cmp.Diff(want, frames[len(frames)-1].Rows); diff != "" {
		t.Errorf("last frame mismatch (-want +got):\n%s", diff)
	}

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestFramesRejectMalformedInput(t *testing.T) {
	_, err := guardPatrol{}.Frames([]byte("...\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = warehouse{}.Frames([]byte("#..#\n\n<\n"))
	assert.ErrorIs(t, err, ErrMalformedInput)
}
