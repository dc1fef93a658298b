package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("12", day12)
}

type caveMap map[string][]string

func day12(in *puzzle.Input) (puzzle.Result, error) {
	caves := make(caveMap)
	for i, line := range in.Lines() {
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" {
			return puzzle.Result{}, fmt.Errorf("line %d: malformed passage %q", i+1, line)
		}
		caves[a] = append(caves[a], b)
		caves[b] = append(caves[b], a)
	}
	if caves["start"] == nil || caves["end"] == nil {
		return puzzle.Result{}, fmt.Errorf("map needs start and end caves")
	}
	for a, nbs := range caves {
		for _, b := range nbs {
			if isBigCave(a) && isBigCave(b) {
				// Two adjacent big caves allow infinitely many paths.
				return puzzle.Result{}, fmt.Errorf("big caves %s and %s are connected", a, b)
			}
		}
	}
	in.Dump("caves", caves)
	visited := make(map[string]int)
	return puzzle.Answer(caves.countPaths("start", visited, false), caves.countPaths("start", visited, true)), nil
}

func isBigCave(name string) bool {
	return unicode.IsUpper(rune(name[0]))
}

// countPaths counts the paths to end from cave. Small caves may be
// visited once, except that if canRevisit is set a single small cave
// other than start may be visited twice.
func (m caveMap) countPaths(cave string, visited map[string]int, canRevisit bool) int {
	if cave == "end" {
		return 1
	}
	visited[cave]++
	defer func() { visited[cave]-- }()
	var n int
	for _, next := range m[cave] {
		switch {
		case next == "start":
		case isBigCave(next) || visited[next] == 0:
			n += m.countPaths(next, visited, canRevisit)
		case canRevisit:
			n += m.countPaths(next, visited, false)
		}
	}
	return n
}
