package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("5", day5)
}

type ventLine struct {
	from, to grid.Point
}

func (l ventLine) diagonal() bool {
	return l.from.X != l.to.X && l.from.Y != l.to.Y
}

func day5(in *puzzle.Input) (puzzle.Result, error) {
	var lines []ventLine
	for i, s := range in.Lines() {
		var l ventLine
		if _, err := fmt.Sscanf(s, "%d,%d -> %d,%d", &l.from.X, &l.from.Y, &l.to.X, &l.to.Y); err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %s", i+1, err)
		}
		if l.diagonal() && abs(l.to.X-l.from.X) != abs(l.to.Y-l.from.Y) {
			return puzzle.Result{}, fmt.Errorf("line %d: %q is not at 45 degrees", i+1, s)
		}
		lines = append(lines, l)
	}
	return puzzle.Answer(countOverlaps(lines, false), countOverlaps(lines, true)), nil
}

func countOverlaps(lines []ventLine, diagonals bool) int {
	covered := make(map[grid.Point]int)
	var overlaps int
	for _, l := range lines {
		if l.diagonal() && !diagonals {
			continue
		}
		step := grid.Point{X: sign(l.to.X - l.from.X), Y: sign(l.to.Y - l.from.Y)}
		for p := l.from; ; p = p.Add(step) {
			covered[p]++
			if covered[p] == 2 {
				overlaps++
			}
			if p == l.to {
				break
			}
		}
	}
	return overlaps
}
