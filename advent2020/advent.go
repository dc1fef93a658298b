// Command advent2020 runs the Advent of Code 2020 solutions.
//
// Usage:
//
//	advent2020 [flags] day
//
// It takes the same flags as advent2021.
package main

import "github.com/seafloor/puzzles/internal/puzzle"

var solutions = puzzle.NewSet()

func register(name string, fn puzzle.Solver) {
	solutions.Register(name, fn)
}

func main() {
	puzzle.Main(2020, solutions)
}
