package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("17", day17)
}

type targetArea struct {
	x0, x1, y0, y1 int
}

func (t targetArea) contains(x, y int) bool {
	return x >= t.x0 && x <= t.x1 && y >= t.y0 && y <= t.y1
}

func day17(in *puzzle.Input) (puzzle.Result, error) {
	var t targetArea
	if _, err := fmt.Sscanf(in.Text(), "target area: x=%d..%d, y=%d..%d", &t.x0, &t.x1, &t.y0, &t.y1); err != nil {
		return puzzle.Result{}, fmt.Errorf("bad target area: %s", err)
	}
	if t.x0 > t.x1 || t.y0 > t.y1 {
		return puzzle.Result{}, fmt.Errorf("empty target area")
	}
	if t.y1 >= 0 {
		return puzzle.Result{}, fmt.Errorf("target area must be below the launcher")
	}

	// A probe launched upward at vy returns to y=0 with velocity -vy-1,
	// so any vy above -y0-1 overshoots on its next step.
	vxLo, vxHi := min(t.x0, 0), max(t.x1, 0)
	highest, hits := 0, 0
	for vx := vxLo; vx <= vxHi; vx++ {
		for vy := t.y0; vy <= -t.y0-1; vy++ {
			if peak, ok := launch(t, vx, vy); ok {
				hits++
				highest = max(highest, peak)
			}
		}
	}
	if hits == 0 {
		return puzzle.Result{}, fmt.Errorf("no launch velocity reaches the target")
	}
	return puzzle.Answer(highest, hits), nil
}

// launch simulates a probe and reports the highest y it reaches and
// whether it is ever inside the target after a step.
func launch(t targetArea, vx, vy int) (int, bool) {
	var x, y, peak int
	for y >= t.y0 {
		x += vx
		y += vy
		vx -= sign(vx)
		vy--
		peak = max(peak, y)
		if t.contains(x, y) {
			return peak, true
		}
	}
	return 0, false
}
