// Command advent2021 runs the Advent of Code 2021 solutions.
//
// Usage:
//
//	advent2021 [flags] day
//
// Each day reads its input from NN.txt in the configured inputs
// directory (see -config) unless -input is given, and prints the
// answer to part 1 followed by the answer to part 2.
package main

import "github.com/seafloor/puzzles/internal/puzzle"

var solutions = puzzle.NewSet()

func register(name string, fn puzzle.Solver) {
	solutions.Register(name, fn)
}

func main() {
	puzzle.Main(2021, solutions)
}
