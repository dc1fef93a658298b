package main

import (
	"fmt"
	"sort"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("9", day9)
}

func day9(in *puzzle.Input) (puzzle.Result, error) {
	g, err := grid.ParseDigits(in.Lines())
	if err != nil {
		return puzzle.Result{}, err
	}
	var risk int
	var basins []int
	var nbs []grid.Point
	for p := range g.All() {
		low := true
		nbs = g.Neighbors4(nbs[:0], p)
		for _, q := range nbs {
			if g.At(q) <= g.At(p) {
				low = false
				break
			}
		}
		if low {
			risk += int(g.At(p)) + 1
			basins = append(basins, basinSize(g, p))
		}
	}
	if len(basins) < 3 {
		return puzzle.Result{}, fmt.Errorf("found %d basins; need at least 3", len(basins))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(basins)))
	in.Tracef("basin sizes: %v", basins)
	return puzzle.Answer(risk, basins[0]*basins[1]*basins[2]), nil
}

// basinSize flood-fills from a low point. Locations of height 9 are
// not part of any basin.
func basinSize(g *grid.Grid, low grid.Point) int {
	seen := map[grid.Point]bool{low: true}
	stack := []grid.Point{low}
	var nbs []grid.Point
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nbs = g.Neighbors4(nbs[:0], p)
		for _, q := range nbs {
			if seen[q] || g.At(q) == 9 {
				continue
			}
			seen[q] = true
			stack = append(stack, q)
		}
	}
	return len(seen)
}
