package main

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("8", day8)
}

// The canonical wiring of the ten digits; segments a-g are bits 0-6.
var canonicalDigits = [10]string{
	"abcefg", "cf", "acdeg", "acdfg", "bcdf",
	"abdfg", "abdefg", "acf", "abcdefg", "abcdfg",
}

// digitByScore maps a digit's segment-frequency score to the digit.
// A digit's score is the sum, over its lit segments, of how many of
// the ten digits light that segment. Rewiring the segments permutes
// them but does not change the scores, and the ten scores are distinct.
var digitByScore = func() map[int]int {
	var freq [7]int
	for _, d := range canonicalDigits {
		for _, c := range d {
			freq[c-'a']++
		}
	}
	m := make(map[int]int)
	for digit, d := range canonicalDigits {
		var score int
		for _, c := range d {
			score += freq[c-'a']
		}
		if _, ok := m[score]; ok {
			panic("segment scores are not unique")
		}
		m[score] = digit
	}
	return m
}()

func day8(in *puzzle.Input) (puzzle.Result, error) {
	var easy, sum int
	for i, line := range in.Lines() {
		digits, err := decodeDisplay(line)
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %s", i+1, err)
		}
		var value int
		for _, d := range digits {
			switch d {
			case 1, 4, 7, 8:
				easy++
			}
			value = value*10 + d
		}
		sum += value
	}
	return puzzle.Answer(easy, sum), nil
}

// decodeDisplay deduces the wiring from a note's ten unique patterns and
// returns the digits shown by its output values.
func decodeDisplay(line string) ([]int, error) {
	patternPart, outputPart, ok := strings.Cut(line, "|")
	if !ok {
		return nil, fmt.Errorf("missing | separator")
	}
	patterns := strings.Fields(patternPart)
	if len(patterns) != 10 {
		return nil, fmt.Errorf("got %d patterns; want 10", len(patterns))
	}
	var freq [7]int
	masks := make(map[uint8]int)
	for _, p := range patterns {
		m, err := segmentMask(p)
		if err != nil {
			return nil, err
		}
		for s := 0; s < 7; s++ {
			if m&(1<<s) != 0 {
				freq[s]++
			}
		}
		masks[m] = -1
	}
	if len(masks) != 10 {
		return nil, fmt.Errorf("patterns are not distinct")
	}
	for m := range masks {
		var score int
		for s := 0; s < 7; s++ {
			if m&(1<<s) != 0 {
				score += freq[s]
			}
		}
		d, ok := digitByScore[score]
		if !ok {
			return nil, fmt.Errorf("patterns do not form a rewired display")
		}
		masks[m] = d
	}

	var digits []int
	for _, out := range strings.Fields(outputPart) {
		m, err := segmentMask(out)
		if err != nil {
			return nil, err
		}
		d, ok := masks[m]
		if !ok {
			return nil, fmt.Errorf("output %q matches no pattern", out)
		}
		digits = append(digits, d)
	}
	return digits, nil
}

func segmentMask(s string) (uint8, error) {
	var m uint8
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("bad segment %q in %q", c, s)
		}
		m |= 1 << (c - 'a')
	}
	if bits.OnesCount8(m) != len(s) {
		return 0, fmt.Errorf("repeated segment in %q", s)
	}
	return m, nil
}
