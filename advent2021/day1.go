package main

import "github.com/seafloor/puzzles/internal/puzzle"

func init() {
	register("1", day1)
}

func day1(in *puzzle.Input) (puzzle.Result, error) {
	depths, err := in.Ints()
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answer(countIncreases(depths, 1), countIncreases(depths, 3)), nil
}

// countIncreases counts how often the sum of a sliding window of the
// given width is larger than the previous window's sum. Consecutive
// windows share all but one element, so only the endpoints matter.
func countIncreases(depths []int, window int) int {
	var n int
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}
