package main

import (
	"fmt"
	"strconv"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("3", day3)
}

func day3(in *puzzle.Input) (puzzle.Result, error) {
	codes := in.Lines()
	if len(codes) == 0 {
		return puzzle.Result{}, fmt.Errorf("no diagnostic codes")
	}
	width := len(codes[0])
	for i, code := range codes {
		if len(code) != width {
			return puzzle.Result{}, fmt.Errorf("line %d: code %q has %d bits; want %d", i+1, code, len(code), width)
		}
		for _, c := range code {
			if c != '0' && c != '1' {
				return puzzle.Result{}, fmt.Errorf("line %d: non-binary code %q", i+1, code)
			}
		}
	}

	var gamma, epsilon int
	for bit := 0; bit < width; bit++ {
		gamma <<= 1
		epsilon <<= 1
		if ones(codes, bit)*2 > len(codes) {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}

	oxygen, err := filterByBit(codes, true)
	if err != nil {
		return puzzle.Result{}, err
	}
	co2, err := filterByBit(codes, false)
	if err != nil {
		return puzzle.Result{}, err
	}
	in.Tracef("gamma=%d epsilon=%d oxygen=%d co2=%d", gamma, epsilon, oxygen, co2)
	return puzzle.Answer(gamma*epsilon, oxygen*co2), nil
}

func ones(codes []string, bit int) int {
	var n int
	for _, code := range codes {
		if code[bit] == '1' {
			n++
		}
	}
	return n
}

// filterByBit applies the bit criteria: keep codes with the most common
// value in each position (ties keep 1s), or with the least common value
// (ties keep 0s), until a single code remains.
func filterByBit(codes []string, mostCommon bool) (int, error) {
	codes = append([]string(nil), codes...)
	for bit := 0; len(codes) > 1 && bit < len(codes[0]); bit++ {
		n := ones(codes, bit)
		keep := byte('0')
		if mostCommon == (n*2 >= len(codes)) {
			keep = '1'
		}
		filtered := codes[:0]
		for _, code := range codes {
			if code[bit] == keep {
				filtered = append(filtered, code)
			}
		}
		codes = filtered
	}
	if len(codes) != 1 {
		return 0, fmt.Errorf("bit criteria left %d codes", len(codes))
	}
	v, err := strconv.ParseInt(codes[0], 2, 64)
	return int(v), err
}
