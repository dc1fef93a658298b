package main

import (
	"sort"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("10", day10)
}

var (
	closerFor = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

	corruptScore = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}

	completeScore = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}
)

func day10(in *puzzle.Input) (puzzle.Result, error) {
	var errorScore int
	var completions []int
	for _, line := range in.Lines() {
		bad, missing := checkChunks(line)
		if bad != 0 {
			errorScore += corruptScore[bad]
			continue
		}
		if len(missing) == 0 {
			continue
		}
		var score int
		for i := len(missing) - 1; i >= 0; i-- {
			score = score*5 + completeScore[missing[i]]
		}
		completions = append(completions, score)
	}
	var middle int
	if len(completions) > 0 {
		sort.Ints(completions)
		middle = completions[len(completions)/2]
	}
	return puzzle.Answer(errorScore, middle), nil
}

// checkChunks returns the first illegal character of a corrupted line,
// or else the stack of closers still expected (innermost last).
func checkChunks(line string) (illegal byte, expected []byte) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if closer, ok := closerFor[c]; ok {
			expected = append(expected, closer)
			continue
		}
		if len(expected) == 0 || expected[len(expected)-1] != c {
			return c, nil
		}
		expected = expected[:len(expected)-1]
	}
	return 0, expected
}
