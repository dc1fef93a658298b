package main

import (
	"testing"

	"github.com/seafloor/puzzles/internal/grid"
)

const day3Example = `
..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#
`

func TestDay3(t *testing.T) {
	checkExample(t, day3, day3Example, "7", "336")
}

func TestTreesOnSlope(t *testing.T) {
	g, err := grid.Parse([]string{"..#", "#..", ".#."})
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		slope grid.Point
		want  int
	}{
		{grid.Point{X: 1, Y: 1}, 0},
		{grid.Point{X: 2, Y: 1}, 1},
		{grid.Point{X: 0, Y: 1}, 1},
		{grid.Point{X: 2, Y: 2}, 0},
	} {
		if got := treesOnSlope(g, tt.slope); got != tt.want {
			t.Errorf("slope %s: got %d; want %d", tt.slope, got, tt.want)
		}
	}
}
