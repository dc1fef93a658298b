// Package puzzle holds the plumbing shared by the advent programs: a
// registry of daily solutions, input helpers, configuration, and the
// command-line runner.
package puzzle

import (
	"fmt"
	"sort"
	"strconv"
)

// A Result holds the answers to both parts of a puzzle.
// Either part may span several lines.
type Result struct {
	Part1 string
	Part2 string
}

// Answer formats two answers of any printable type as a Result.
func Answer(part1, part2 any) Result {
	return Result{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

func (r Result) String() string {
	if r.Part2 == "" {
		return r.Part1
	}
	return r.Part1 + "\n" + r.Part2
}

// A Solver computes the answers for one day's input.
type Solver func(in *Input) (Result, error)

// A Set is a registry of solvers keyed by day name ("1", "14", ...).
type Set struct {
	solvers map[string]Solver
}

func NewSet() *Set {
	return &Set{solvers: make(map[string]Solver)}
}

// Register adds a solver. Registering the same name twice panics.
func (s *Set) Register(name string, fn Solver) {
	if _, ok := s.solvers[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	s.solvers[name] = fn
}

// Lookup finds a solver by name. Zero-padded day numbers ("07") match
// their unpadded registration.
func (s *Set) Lookup(name string) (Solver, bool) {
	if n, err := strconv.Atoi(name); err == nil {
		name = strconv.Itoa(n)
	}
	fn, ok := s.solvers[name]
	return fn, ok
}

// Names lists the registered names in day order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.solvers))
	for name := range s.solvers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 != n1 {
		return n0 < n1
	}
	return s0 < s1
}

// splitName splits "12b" into 12 and "b". A name without a numeric
// prefix sorts before every day.
func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	if i == 0 {
		return -1, name
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
