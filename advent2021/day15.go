package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/heapq"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("15", day15)
}

func day15(in *puzzle.Input) (puzzle.Result, error) {
	g, err := grid.ParseDigits(in.Lines())
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answer(lowestRisk(g), lowestRisk(tileCave(g, 5))), nil
}

// tileCave repeats the cave n times in each direction. Each tile to the
// right or down adds 1 to every risk level, wrapping from 9 back to 1.
func tileCave(g *grid.Grid, n int) *grid.Grid {
	big := grid.New(g.W*n, g.H*n, 0)
	for p := range big.All() {
		orig := g.At(grid.Point{X: p.X % g.W, Y: p.Y % g.H})
		v := int(orig) + p.X/g.W + p.Y/g.H
		big.Set(p, byte((v-1)%9+1))
	}
	return big
}

type riskPath struct {
	p    grid.Point
	risk int
}

// lowestRisk finds the least total risk of a path from the top left to
// the bottom right with Dijkstra's algorithm. The starting position's
// risk is not counted.
func lowestRisk(g *grid.Grid) int {
	end := grid.Point{X: g.W - 1, Y: g.H - 1}
	best := make([]int, g.W*g.H)
	for i := range best {
		best[i] = -1
	}
	best[0] = 0
	h := heapq.New(func(a, b riskPath) bool { return a.risk < b.risk })
	h.Push(riskPath{})
	var nbs []grid.Point
	for h.Len() > 0 {
		cur := h.Pop()
		if cur.p == end {
			return cur.risk
		}
		if cur.risk > best[cur.p.Y*g.W+cur.p.X] {
			continue
		}
		nbs = g.Neighbors4(nbs[:0], cur.p)
		for _, q := range nbs {
			r := cur.risk + int(g.At(q))
			i := q.Y*g.W + q.X
			if best[i] < 0 || r < best[i] {
				best[i] = r
				h.Push(riskPath{q, r})
			}
		}
	}
	panic(fmt.Sprintf("no path to %s", end))
}
