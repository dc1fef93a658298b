package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("18", day18)
}

// A snailNum is a snailfish number flattened to its regular numbers in
// left-to-right order, each with its nesting depth. Two adjacent
// elements at the greatest depth always form a pair.
type snailNum []snailElem

type snailElem struct {
	val   int
	depth int
}

func day18(in *puzzle.Input) (puzzle.Result, error) {
	var nums []snailNum
	for i, line := range in.Lines() {
		n, err := parseSnail(line)
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %s", i+1, err)
		}
		nums = append(nums, n)
	}
	if len(nums) < 2 {
		return puzzle.Result{}, fmt.Errorf("need at least two numbers")
	}
	sum := nums[0]
	for _, n := range nums[1:] {
		sum = sum.add(n)
	}
	in.Tracef("final sum: %s", sum)

	var best int
	for i, a := range nums {
		for j, b := range nums {
			if i != j {
				best = max(best, a.add(b).magnitude())
			}
		}
	}
	return puzzle.Answer(sum.magnitude(), best), nil
}

func parseSnail(s string) (snailNum, error) {
	var n snailNum
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced ] at %d", i)
			}
		case c == ',':
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			v, _ := strconv.Atoi(s[i:j])
			n = append(n, snailElem{v, depth})
			i = j - 1
		default:
			return nil, fmt.Errorf("unexpected %q at %d", c, i)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets")
	}
	if len(n) < 2 {
		return nil, fmt.Errorf("%q is not a pair", s)
	}
	// Round-trip to catch malformed shapes such as "[1,2,3]".
	if n.String() != strings.ReplaceAll(s, " ", "") {
		return nil, fmt.Errorf("malformed snailfish number %q", s)
	}
	return n, nil
}

func (n snailNum) String() string {
	var b strings.Builder
	i := 0
	var write func(depth int)
	write = func(depth int) {
		if i >= len(n) {
			return
		}
		if n[i].depth == depth {
			b.WriteString(strconv.Itoa(n[i].val))
			i++
			return
		}
		b.WriteByte('[')
		write(depth + 1)
		b.WriteByte(',')
		write(depth + 1)
		b.WriteByte(']')
	}
	write(0)
	if i != len(n) {
		return "<malformed>"
	}
	return b.String()
}

func (n snailNum) add(m snailNum) snailNum {
	sum := make(snailNum, 0, len(n)+len(m))
	for _, e := range n {
		sum = append(sum, snailElem{e.val, e.depth + 1})
	}
	for _, e := range m {
		sum = append(sum, snailElem{e.val, e.depth + 1})
	}
	sum.reduce()
	return sum
}

func (n *snailNum) reduce() {
	for n.explode() || n.split() {
	}
}

// explode explodes the leftmost pair nested inside four pairs.
func (n *snailNum) explode() bool {
	s := *n
	for i := 0; i+1 < len(s); i++ {
		if s[i].depth <= 4 || s[i+1].depth != s[i].depth {
			continue
		}
		if i > 0 {
			s[i-1].val += s[i].val
		}
		if i+2 < len(s) {
			s[i+2].val += s[i+1].val
		}
		s[i] = snailElem{0, s[i].depth - 1}
		*n = append(s[:i+1], s[i+2:]...)
		return true
	}
	return false
}

// split splits the leftmost regular number of 10 or more.
func (n *snailNum) split() bool {
	s := *n
	for i, e := range s {
		if e.val < 10 {
			continue
		}
		left := snailElem{e.val / 2, e.depth + 1}
		right := snailElem{(e.val + 1) / 2, e.depth + 1}
		s = append(s[:i+1], s[i:]...)
		s[i], s[i+1] = left, right
		*n = s
		return true
	}
	return false
}

func (n snailNum) magnitude() int {
	s := append(snailNum(nil), n...)
	for len(s) > 1 {
		deepest := 0
		for _, e := range s {
			deepest = max(deepest, e.depth)
		}
		for i := 0; i+1 < len(s); i++ {
			if s[i].depth == deepest && s[i+1].depth == deepest {
				s[i] = snailElem{3*s[i].val + 2*s[i+1].val, deepest - 1}
				s = append(s[:i+1], s[i+2:]...)
				break
			}
		}
	}
	return s[0].val
}
