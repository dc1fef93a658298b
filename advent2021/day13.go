package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("13", day13)
}

type fold struct {
	axis byte // 'x' or 'y'
	at   int
}

func (f fold) apply(p grid.Point) grid.Point {
	if f.axis == 'x' && p.X > f.at {
		p.X = 2*f.at - p.X
	}
	if f.axis == 'y' && p.Y > f.at {
		p.Y = 2*f.at - p.Y
	}
	return p
}

func day13(in *puzzle.Input) (puzzle.Result, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 {
		return puzzle.Result{}, fmt.Errorf("want dots and folds separated by a blank line")
	}
	dots := make(map[grid.Point]bool)
	for _, line := range blocks[0] {
		var p grid.Point
		if _, err := fmt.Sscanf(line, "%d,%d", &p.X, &p.Y); err != nil {
			return puzzle.Result{}, fmt.Errorf("bad dot %q: %s", line, err)
		}
		dots[p] = true
	}
	var folds []fold
	for _, line := range blocks[1] {
		spec, ok := strings.CutPrefix(line, "fold along ")
		if !ok || len(spec) < 3 || (spec[0] != 'x' && spec[0] != 'y') || spec[1] != '=' {
			return puzzle.Result{}, fmt.Errorf("bad fold %q", line)
		}
		f := fold{axis: spec[0]}
		if _, err := fmt.Sscanf(spec[2:], "%d", &f.at); err != nil {
			return puzzle.Result{}, fmt.Errorf("bad fold %q: %s", line, err)
		}
		folds = append(folds, f)
	}
	if len(folds) == 0 {
		return puzzle.Result{}, fmt.Errorf("no folds")
	}

	var afterFirst int
	for i, f := range folds {
		folded := make(map[grid.Point]bool, len(dots))
		for p := range dots {
			folded[f.apply(p)] = true
		}
		dots = folded
		if i == 0 {
			afterFirst = len(dots)
		}
	}
	return puzzle.Answer(afterFirst, renderDots(dots)), nil
}

// renderDots draws the dots' bounding box, '#' for a dot and '.' otherwise.
func renderDots(dots map[grid.Point]bool) string {
	if len(dots) == 0 {
		return ""
	}
	lo := grid.Point{X: math.MaxInt, Y: math.MaxInt}
	hi := grid.Point{X: math.MinInt, Y: math.MinInt}
	for p := range dots {
		lo = grid.Point{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = grid.Point{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	g := grid.New(hi.X-lo.X+1, hi.Y-lo.Y+1, '.')
	for p := range dots {
		g.Set(grid.Point{X: p.X - lo.X, Y: p.Y - lo.Y}, '#')
	}
	return g.String()
}
