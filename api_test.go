package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const labInput = `....#.....
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

const warehouseInput = `########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
`

func newTestAPI(cfg Config) *APIServer {
	return NewAPIServer(zap.NewNop(), cfg)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var data map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	}
	return rec, data
}

func TestAPIListPuzzles(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTestAPI(DefaultConfig()).Handler()

	rec, data := do(t, h, "GET", "/puzzles/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Subset(t, data["items"], []interface{}{"2024/06", "2024/10", "2024/12", "2024/15"})
}

func TestAPIDescribePuzzle(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTestAPI(DefaultConfig()).Handler()

	tests := []struct {
		path     string
		id       string
		animated bool
	}{
		{"/puzzles/2024/6", "2024/06", true},
		{"/puzzles/2024/10", "2024/10", false},
		{"/puzzles/2024/12", "2024/12", false},
		{"/puzzles/2024/15", "2024/15", true},
	}
	for _, tt := range tests {
		rec, data := do(t, h, "GET", tt.path, "")
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		item := data["item"].(map[string]interface{})
		assert.Equal(t, tt.id, item["id"])
		assert.Equal(t, tt.animated, item["animated"], tt.path)
	}
}

func TestAPISolve(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTestAPI(DefaultConfig()).Handler()

	tests := []struct {
		path, input  string
		part1, part2 string
	}{
		{"/puzzles/2024/6", labInput, "41", "6"},
		{"/puzzles/2024/06", labInput, "41", "6"},
		{"/puzzles/2024/15", warehouseInput, "2028", "1751"},
		{"/puzzles/2024/12", "AAAA\nBBCD\nBBCC\nEEEC\n", "140", "80"},
	}
	for _, tt := range tests {
		rec, data := do(t, h, "POST", tt.path, tt.input)
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		item := data["item"].(map[string]interface{})
		assert.Equal(t, tt.part1, item["part1"], tt.path)
		assert.Equal(t, tt.part2, item["part2"], tt.path)
	}
}

func TestAPIErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTestAPI(DefaultConfig()).Handler()

	tests := []struct {
		method, path, body string
		want               int
	}{
		{"POST", "/puzzles/2024/6", "....\n", http.StatusUnprocessableEntity},
		{"POST", "/puzzles/1999/1", labInput, http.StatusNotFound},
		{"GET", "/puzzles/2024/99", "", http.StatusNotFound},
		{"GET", "/nowhere", "", http.StatusNotFound},
		{"POST", "/puzzles/2024/6", strings.Repeat(".", maxInputBytes+1), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		rec, _ := do(t, h, tt.method, tt.path, tt.body)
		assert.Equal(t, tt.want, rec.Code, "%s %s", tt.method, tt.path)
	}

	_, data := do(t, h, "POST", "/puzzles/2024/6", "....\n")
	assert.Contains(t, data["error"], "malformed input")
}

func TestAPIMetrics(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTestAPI(DefaultConfig()).Handler()

	do(t, h, "POST", "/puzzles/2024/6", labInput)
	rec, _ := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `aoc_solve_total{outcome="ok",puzzle="2024/06"}`)
	assert.Contains(t, body, "aoc_solve_duration_seconds_bucket")
}
