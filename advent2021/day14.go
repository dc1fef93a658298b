package main

import (
	"fmt"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("14", day14)
}

type pair [2]byte

// A polymer is tracked as counts of adjacent element pairs; the order
// of the pairs never matters for the element counts.
type polymer struct {
	pairs map[pair]int
	last  byte
}

func day14(in *puzzle.Input) (puzzle.Result, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return puzzle.Result{}, fmt.Errorf("want a template and insertion rules separated by a blank line")
	}
	template := strings.TrimSpace(blocks[0][0])
	if len(template) < 2 {
		return puzzle.Result{}, fmt.Errorf("template %q is too short", template)
	}
	rules := make(map[pair]byte)
	for _, line := range blocks[1] {
		from, to, ok := strings.Cut(line, " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return puzzle.Result{}, fmt.Errorf("bad insertion rule %q", line)
		}
		rules[pair{from[0], from[1]}] = to[0]
	}

	p := polymer{pairs: make(map[pair]int), last: template[len(template)-1]}
	for i := 0; i+1 < len(template); i++ {
		p.pairs[pair{template[i], template[i+1]}]++
	}
	var spread10 int
	for step := 1; step <= 40; step++ {
		p = p.insert(rules)
		if step == 10 {
			spread10 = p.spread()
		}
	}
	return puzzle.Answer(spread10, p.spread()), nil
}

func (p polymer) insert(rules map[pair]byte) polymer {
	next := polymer{pairs: make(map[pair]int, len(p.pairs)), last: p.last}
	for pr, n := range p.pairs {
		c, ok := rules[pr]
		if !ok {
			next.pairs[pr] += n
			continue
		}
		next.pairs[pair{pr[0], c}] += n
		next.pairs[pair{c, pr[1]}] += n
	}
	return next
}

// spread is the difference between the most and least common element
// counts. Every element is the first of a pair except the last one.
func (p polymer) spread() int {
	counts := map[byte]int{p.last: 1}
	for pr, n := range p.pairs {
		counts[pr[0]] += n
	}
	lo, hi := -1, 0
	for _, n := range counts {
		if lo < 0 || n < lo {
			lo = n
		}
		hi = max(hi, n)
	}
	return hi - lo
}
