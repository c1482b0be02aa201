package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionRotation(t *testing.T) {
	for _, d := range Directions() {
		t.Run(d.String(), func(t *testing.T) {
			assert.Equal(t, d, d.TurnRight().TurnRight().TurnRight().TurnRight())
			assert.Equal(t, d.TurnRight().TurnRight().TurnRight(), d.TurnLeft())
			assert.Equal(t, d, d.TurnLeft().TurnRight())
			assert.Equal(t, d, d.TurnRight().TurnLeft())
			assert.Equal(t, d.TurnRight().TurnRight(), d.Reverse())
			assert.Equal(t, d.TurnLeft().TurnLeft(), d.Reverse())
			assert.Equal(t, d.Delta().Neg(), d.Reverse().Delta())
		})
	}
}

func TestDirectionTurns(t *testing.T) {
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Down, Up.TurnRight().TurnRight())
	assert.Equal(t, Down, Up.Reverse())
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Equal(t, Up, Left.TurnRight())
}

func TestDirectionsIsRestartable(t *testing.T) {
	want := [4]Direction{Up, Right, Down, Left}
	assert.Equal(t, want, Directions())

	var first, second []Direction
	all := Directions()
	for _, d := range all {
		first = append(first, d)
	}
	for _, d := range all {
		second = append(second, d)
	}
	assert.Equal(t, first, second)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   rune
		want Direction
		ok   bool
	}{
		{'^', Up, true},
		{'>', Right, true},
		{'v', Down, true},
		{'<', Left, true},
		{'U', Up, true},
		{'E', Right, true},
		{'S', Down, true},
		{'L', Left, true},
		{'x', 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		assert.Equal(t, tt.ok, ok, "%q", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "%q", tt.in)
			assert.Equal(t, got, must(ParseDirection([]rune(got.String())[0])))
		}
	}
}

func must(d Direction, ok bool) Direction {
	if !ok {
		panic("unparsable direction")
	}
	return d
}
