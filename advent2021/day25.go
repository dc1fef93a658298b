package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("25", day25)
}

const maxHerdSteps = 1_000_000

func day25(in *puzzle.Input) (puzzle.Result, error) {
	g, err := grid.Parse(in.Lines())
	if err != nil {
		return puzzle.Result{}, err
	}
	for p := range g.All() {
		switch c := g.At(p); c {
		case '.', '>', 'v':
		default:
			return puzzle.Result{}, fmt.Errorf("bad cell %q at %s", c, p)
		}
	}
	for step := 1; step <= maxHerdSteps; step++ {
		moved := moveHerd(g, '>', grid.Point{X: 1})
		moved += moveHerd(g, 'v', grid.Point{Y: 1})
		if moved == 0 {
			if in.Tracing() {
				in.Tracef("settled after %d steps:\n%s", step, g)
			}
			// Day 25 has no second puzzle.
			return puzzle.Answer(step, ""), nil
		}
	}
	return puzzle.Result{}, fmt.Errorf("sea cucumbers still moving after %d steps", maxHerdSteps)
}

// moveHerd moves every sea cucumber of one herd a step in direction d
// if the space ahead (wrapping around the edges) was empty at the start
// of the move. It returns the number that moved.
func moveHerd(g *grid.Grid, herd byte, d grid.Point) int {
	var movers []grid.Point
	for p := range g.All() {
		if g.At(p) == herd && g.At(wrap(g, p.Add(d))) == '.' {
			movers = append(movers, p)
		}
	}
	for _, p := range movers {
		g.Set(p, '.')
		g.Set(wrap(g, p.Add(d)), herd)
	}
	return len(movers)
}

func wrap(g *grid.Grid, p grid.Point) grid.Point {
	return grid.Point{X: p.X % g.W, Y: p.Y % g.H}
}
