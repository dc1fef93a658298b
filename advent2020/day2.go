package main

import (
	"fmt"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("2", day2)
}

type passwordPolicy struct {
	lo, hi   int
	c        byte
	password string
}

func parsePasswordPolicy(s string) (passwordPolicy, error) {
	var p passwordPolicy
	rule, password, ok := strings.Cut(s, ": ")
	if !ok {
		return p, fmt.Errorf("bad password entry %q", s)
	}
	var c string
	if _, err := fmt.Sscanf(rule, "%d-%d %s", &p.lo, &p.hi, &c); err != nil || len(c) != 1 {
		return p, fmt.Errorf("bad policy %q", rule)
	}
	if p.lo < 1 || p.hi < p.lo {
		return p, fmt.Errorf("bad range in policy %q", rule)
	}
	p.c = c[0]
	p.password = password
	return p, nil
}

// countValid checks the policy as an occurrence range.
func (p passwordPolicy) countValid() bool {
	n := strings.Count(p.password, string(p.c))
	return n >= p.lo && n <= p.hi
}

// positionValid checks the policy as two 1-indexed positions, exactly
// one of which must hold the letter.
func (p passwordPolicy) positionValid() bool {
	at := func(i int) bool { return i <= len(p.password) && p.password[i-1] == p.c }
	return at(p.lo) != at(p.hi)
}

func day2(in *puzzle.Input) (puzzle.Result, error) {
	var byCount, byPosition int
	for i, line := range in.Lines() {
		p, err := parsePasswordPolicy(line)
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %s", i+1, err)
		}
		if p.countValid() {
			byCount++
		}
		if p.positionValid() {
			byPosition++
		}
	}
	return puzzle.Answer(byCount, byPosition), nil
}
