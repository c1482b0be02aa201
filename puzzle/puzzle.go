// Package puzzle keeps the registry of solvers, one per Advent of Code
// day. Each solver reads the day's raw input and produces both answers.
package puzzle

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownPuzzle  = errors.New("unknown puzzle")
	ErrMalformedInput = errors.New("malformed input")
)

// ID names a puzzle by year and day.
type ID struct {
	Year, Day int
}

func (id ID) String() string {
	return fmt.Sprintf("%d/%02d", id.Year, id.Day)
}

// ParseID parses "2024/6" or "2024/06".
func ParseID(s string) (ID, error) {
	year, day, ok := strings.Cut(s, "/")
	if !ok {
		return ID{}, fmt.Errorf("puzzle id %q: want year/day", s)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return ID{}, fmt.Errorf("puzzle id %q: %w", s, err)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return ID{}, fmt.Errorf("puzzle id %q: %w", s, err)
	}
	if d < 1 || d > 25 {
		return ID{}, fmt.Errorf("puzzle id %q: day out of range", s)
	}
	return ID{Year: y, Day: d}, nil
}

func compareIDs(a, b ID) int {
	if a.Year != b.Year {
		return a.Year - b.Year
	}
	return a.Day - b.Day
}

// Answer holds both parts of a solution, already formatted.
type Answer struct {
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
}

func answer(part1, part2 any) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// Lines renders the answer the way every day prints it.
func (a Answer) Lines() []string {
	return []string{"part 1: " + a.Part1, "part 2: " + a.Part2}
}

// Puzzle solves one day.
type Puzzle interface {
	Solve(input []byte) (Answer, error)
}

// Frame is a rendered snapshot of a simulation.
type Frame struct {
	Step int      `json:"step"`
	Rows []string `json:"rows"`
}

// Animator is implemented by puzzles whose simulation can be watched.
type Animator interface {
	Frames(input []byte) (iter.Seq[Frame], error)
}

var registry = map[ID]Puzzle{}

// Register adds p under id. Registering the same id twice panics.
func Register(id ID, p Puzzle) {
	if _, dup := registry[id]; dup {
		panic("puzzle: " + id.String() + " registered twice")
	}
	registry[id] = p
}

// Lookup returns the puzzle registered under id.
func Lookup(id ID) (Puzzle, error) {
	p, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%v: %w", id, ErrUnknownPuzzle)
	}
	return p, nil
}

// IDs lists the registered puzzles, oldest first.
func IDs() []ID {
	return slices.SortedFunc(maps.Keys(registry), compareIDs)
}

// Latest returns the most recently dated registered puzzle.
func Latest() (ID, bool) {
	ids := IDs()
	if len(ids) == 0 {
		return ID{}, false
	}
	return ids[len(ids)-1], true
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedInput)
}
