package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("11", day11)
}

// maxOctopusSteps bounds the search for a synchronized flash.
const maxOctopusSteps = 100000

func day11(in *puzzle.Input) (puzzle.Result, error) {
	g, err := grid.ParseDigits(in.Lines())
	if err != nil {
		return puzzle.Result{}, err
	}
	var flashes100 int
	for step := 1; step <= maxOctopusSteps; step++ {
		n := octopusStep(g)
		if step <= 100 {
			flashes100 += n
		}
		if n == g.W*g.H {
			in.Tracef("all octopuses flash at step %d", step)
			if step < 100 {
				// Keep stepping to finish the part 1 count.
				for s := step + 1; s <= 100; s++ {
					flashes100 += octopusStep(g)
				}
			}
			return puzzle.Answer(flashes100, step), nil
		}
	}
	return puzzle.Result{}, fmt.Errorf("octopuses did not synchronize in %d steps", maxOctopusSteps)
}

// octopusStep advances the energy levels by one step and returns the
// number of octopuses that flashed.
func octopusStep(g *grid.Grid) int {
	var pending []grid.Point
	for p := range g.All() {
		g.Set(p, g.At(p)+1)
		if g.At(p) == 10 {
			pending = append(pending, p)
		}
	}
	flashed := len(pending)
	var nbs []grid.Point
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		nbs = g.Neighbors8(nbs[:0], p)
		for _, q := range nbs {
			g.Set(q, g.At(q)+1)
			if g.At(q) == 10 {
				pending = append(pending, q)
				flashed++
			}
		}
	}
	for p := range g.All() {
		if g.At(p) > 9 {
			g.Set(p, 0)
		}
	}
	return flashed
}
