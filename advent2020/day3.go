package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("3", day3)
}

var tobogganSlopes = []grid.Point{
	{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 5, Y: 1}, {X: 7, Y: 1}, {X: 1, Y: 2},
}

func day3(in *puzzle.Input) (puzzle.Result, error) {
	g, err := grid.Parse(in.Lines())
	if err != nil {
		return puzzle.Result{}, err
	}
	for p := range g.All() {
		if c := g.At(p); c != '.' && c != '#' {
			return puzzle.Result{}, fmt.Errorf("bad cell %q at %s", c, p)
		}
	}
	product := 1
	for _, slope := range tobogganSlopes {
		n := treesOnSlope(g, slope)
		in.Tracef("slope %s: %d trees", slope, n)
		product *= n
	}
	return puzzle.Answer(treesOnSlope(g, grid.Point{X: 3, Y: 1}), product), nil
}

// treesOnSlope counts the trees hit going from the top left to the
// bottom. The map repeats to the right.
func treesOnSlope(g *grid.Grid, slope grid.Point) int {
	n := 0
	for p := (grid.Point{}); p.Y < g.H; p = p.Add(slope) {
		if g.At(grid.Point{X: p.X % g.W, Y: p.Y}) == '#' {
			n++
		}
	}
	return n
}
