package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seafloor/puzzles/internal/alu"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("24", day24)
}

func day24(in *puzzle.Input) (puzzle.Result, error) {
	prog, err := alu.Parse(strings.NewReader(in.Text()))
	if err != nil {
		return puzzle.Result{}, err
	}
	hi, lo, err := searchModelNumbers(in, prog)
	if err != nil {
		return puzzle.Result{}, err
	}
	for _, n := range []string{hi, lo} {
		if err := checkModelNumber(prog, n); err != nil {
			return puzzle.Result{}, err
		}
	}
	return puzzle.Answer(hi, lo), nil
}

type modelPrefix struct {
	hi, lo string
}

// searchModelNumbers finds the largest and smallest model numbers
// (digits 1-9, one per inp) that leave z = 0. Each chunk of the program
// is assumed to read only z from the previous chunk, so the search keeps
// one entry per distinct z value. A chunk can at best divide z by the
// literal of its "div z" instruction, so z values that the remaining
// chunks cannot bring down to zero are dropped.
func searchModelNumbers(in *puzzle.Input, prog []alu.Instruction) (hi, lo string, err error) {
	chunks := alu.Split(prog)
	if len(chunks) == 0 {
		return "", "", errors.New("empty program")
	}
	divs := make([]int64, len(chunks))
	for i, chunk := range chunks {
		if chunk[0].Op != alu.Inp {
			return "", "", errors.New("program must start with inp")
		}
		divs[i] = 1
		for _, inst := range chunk {
			if inst.Op == alu.Div && inst.A == alu.Z && inst.B.IsLit && inst.B.Lit > 1 {
				divs[i] *= inst.B.Lit
			}
		}
	}
	// bound[i] is the product of the divisors of the chunks after i.
	bound := make([]int64, len(chunks))
	b := int64(1)
	for i := len(chunks) - 1; i >= 0; i-- {
		bound[i] = b
		if b < 1<<40 {
			b *= divs[i]
		}
	}

	states := map[int64]modelPrefix{0: {}}
	var m alu.Machine
	for i, chunk := range chunks {
		next := make(map[int64]modelPrefix)
		for z, p := range states {
			for d := int64(1); d <= 9; d++ {
				m.Reset()
				m.Regs[alu.Z] = z
				m.Feed(d)
				if err := m.Run(chunk); err != nil {
					continue
				}
				nz := m.Regs[alu.Z]
				if nz < 0 || nz >= bound[i] {
					continue
				}
				digit := strconv.FormatInt(d, 10)
				cand := modelPrefix{p.hi + digit, p.lo + digit}
				if old, ok := next[nz]; ok {
					cand.hi = max(old.hi, cand.hi)
					cand.lo = min(old.lo, cand.lo)
				}
				next[nz] = cand
			}
		}
		in.Tracef("digit %d: %s z values", i+1, puzzle.Count(len(next)))
		states = next
	}
	p, ok := states[0]
	if !ok {
		return "", "", errors.New("no valid model number")
	}
	return p.hi, p.lo, nil
}

// checkModelNumber runs the whole program on n and reports whether
// it is accepted.
func checkModelNumber(prog []alu.Instruction, n string) error {
	var m alu.Machine
	for _, c := range n {
		m.Feed(int64(c - '0'))
	}
	if err := m.Run(prog); err != nil {
		return fmt.Errorf("model number %s: %s", n, err)
	}
	if m.Regs[alu.Z] != 0 {
		return fmt.Errorf("model number %s rejected: %s", n, &m)
	}
	return nil
}
