package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("2", day2)
}

type subState struct {
	horiz, depth, aim int
}

func day2(in *puzzle.Input) (puzzle.Result, error) {
	// Part 1 moves by depth directly; part 2 treats up/down as aim.
	// The aim in part 2 always equals part 1's depth.
	var a, b subState
	for i, line := range in.Lines() {
		cmd, arg, ok := strings.Cut(line, " ")
		if !ok {
			return puzzle.Result{}, fmt.Errorf("line %d: malformed command %q", i+1, line)
		}
		x, err := strconv.Atoi(arg)
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %s", i+1, err)
		}
		switch cmd {
		case "forward":
			a.horiz += x
			b.horiz += x
			b.depth += b.aim * x
		case "down":
			a.depth += x
			b.aim += x
		case "up":
			a.depth -= x
			b.aim -= x
		default:
			return puzzle.Result{}, fmt.Errorf("line %d: invalid command %q", i+1, cmd)
		}
	}
	in.Tracef("part 1: %d x %d; part 2: %d x %d", a.horiz, a.depth, b.horiz, b.depth)
	return puzzle.Answer(a.horiz*a.depth, b.horiz*b.depth), nil
}
