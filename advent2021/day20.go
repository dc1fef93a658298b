package main

import (
	"fmt"
	"strings"

	"github.com/seafloor/puzzles/internal/grid"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("20", day20)
}

// A trenchImage is a finite lit/unlit grid inside an infinite
// background whose pixels are all background.
type trenchImage struct {
	g          *grid.Grid
	background byte
}

func day20(in *puzzle.Input) (puzzle.Result, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 {
		return puzzle.Result{}, fmt.Errorf("want an algorithm and an image separated by a blank line")
	}
	algo := strings.Join(blocks[0], "")
	if len(algo) != 512 || strings.Trim(algo, "#.") != "" {
		return puzzle.Result{}, fmt.Errorf("enhancement algorithm must be 512 '#'/'.' characters")
	}
	g, err := grid.Parse(blocks[1])
	if err != nil {
		return puzzle.Result{}, err
	}
	for p := range g.All() {
		if c := g.At(p); c != '#' && c != '.' {
			return puzzle.Result{}, fmt.Errorf("bad pixel %q at %s", c, p)
		}
	}

	img := trenchImage{g: g, background: '.'}
	var lit2 int
	for step := 1; step <= 50; step++ {
		img = img.enhance(algo)
		if step == 2 {
			lit2 = img.g.Count('#')
		}
		in.Tracef("step %d: %dx%d, background %q", step, img.g.W, img.g.H, img.background)
	}
	if img.background == '#' {
		return puzzle.Result{}, fmt.Errorf("infinitely many pixels are lit")
	}
	return puzzle.Answer(lit2, img.g.Count('#')), nil
}

// enhance applies the algorithm once. The image grows by one pixel on
// each side; the background flips when the algorithm maps an all-dark
// (or all-lit) neighborhood to the other color.
func (img trenchImage) enhance(algo string) trenchImage {
	out := grid.New(img.g.W+2, img.g.H+2, '.')
	for p := range out.All() {
		src := grid.Point{X: p.X - 1, Y: p.Y - 1}
		var idx int
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				idx <<= 1
				if img.g.Get(src.Add(grid.Point{X: dx, Y: dy}), img.background) == '#' {
					idx |= 1
				}
			}
		}
		out.Set(p, algo[idx])
	}
	bg := algo[0]
	if img.background == '#' {
		bg = algo[511]
	}
	return trenchImage{g: out, background: bg}
}
