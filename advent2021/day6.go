package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("6", day6)
}

const (
	fishCycle    = 7
	newFishDelay = 2
)

func day6(in *puzzle.Input) (puzzle.Result, error) {
	timers, err := puzzle.SplitInts(in.Text())
	if err != nil {
		return puzzle.Result{}, err
	}
	// School tracks the number of fish at each timer value.
	var school [fishCycle + newFishDelay]int
	for _, t := range timers {
		if t < 0 || t >= len(school) {
			return puzzle.Result{}, fmt.Errorf("timer %d out of range", t)
		}
		school[t]++
	}
	return puzzle.Answer(simulateFish(school, 80), simulateFish(school, 256)), nil
}

func simulateFish(school [fishCycle + newFishDelay]int, days int) int {
	for range days {
		spawning := school[0]
		copy(school[:], school[1:])
		school[fishCycle-1] += spawning
		school[len(school)-1] = spawning
	}
	var total int
	for _, n := range school {
		total += n
	}
	return total
}
