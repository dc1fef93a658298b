package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seafloor/puzzles/internal/heapq"
	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("23", day23)
}

func day23(in *puzzle.Input) (puzzle.Result, error) {
	rows, err := parseBurrow(in.Lines())
	if err != nil {
		return puzzle.Result{}, err
	}
	part1, err := organize(rows)
	if err != nil {
		return puzzle.Result{}, err
	}
	unfolded := make([]string, 0, len(rows)+2)
	unfolded = append(unfolded, rows[0], "DCBA", "DBAC")
	unfolded = append(unfolded, rows[1:]...)
	part2, err := organize(unfolded)
	if err != nil {
		return puzzle.Result{}, err
	}
	return puzzle.Answer(part1, part2), nil
}

const hallLen = 11

var (
	moveEnergy = [4]int{1, 10, 100, 1000}
	// hallStops are the hallway spaces an amphipod may stop in; the
	// others are directly outside a room.
	hallStops = []int{0, 1, 3, 5, 7, 9, 10}
)

func roomCol(room int) int { return 2 + 2*room }

// parseBurrow returns the side rooms' contents top to bottom, one string
// of four letters per row.
func parseBurrow(lines []string) ([]string, error) {
	if len(lines) < 3 || strings.Trim(lines[1], "#.") != "" || len(lines[1]) != hallLen+2 {
		return nil, errors.New("missing hallway")
	}
	if strings.Trim(lines[1], "#") != strings.Repeat(".", hallLen) {
		return nil, errors.New("hallway must start empty")
	}
	var rows []string
	var count [4]int
	for i, line := range lines[2:] {
		if strings.Trim(line, "# ") == "" {
			break
		}
		if len(line) < 10 {
			return nil, fmt.Errorf("line %d: short room row %q", i+3, line)
		}
		var row []byte
		for room := range 4 {
			c := line[roomCol(room)+1]
			if c < 'A' || c > 'D' {
				return nil, fmt.Errorf("line %d: bad amphipod %q", i+3, c)
			}
			count[c-'A']++
			row = append(row, c)
		}
		rows = append(rows, string(row))
	}
	if len(rows) == 0 {
		return nil, errors.New("no side rooms")
	}
	for i, n := range count {
		if n != len(rows) {
			return nil, fmt.Errorf("got %d amphipods of type %c; want %d", n, 'A'+i, len(rows))
		}
	}
	return rows, nil
}

// A burrow is the hallway followed by each room's slots, top to bottom.
// Empty spaces are '.'.
type burrow struct {
	cells string
	depth int
}

func (b burrow) slot(room, d int) int { return hallLen + room*b.depth + d }

// top returns the depth of the topmost occupied slot of a room, or -1.
func (b burrow) top(room int) int {
	for d := range b.depth {
		if b.cells[b.slot(room, d)] != '.' {
			return d
		}
	}
	return -1
}

// settled reports whether a room holds only its own amphipods, and
// returns the deepest empty slot (-1 when full).
func (b burrow) settled(room int) (ok bool, free int) {
	free = -1
	for d := range b.depth {
		switch b.cells[b.slot(room, d)] {
		case '.':
			free = d
		case byte('A' + room):
		default:
			return false, 0
		}
	}
	return true, free
}

func (b burrow) hallClear(from, to int) bool {
	lo, hi := min(from, to), max(from, to)
	for i := lo; i <= hi; i++ {
		if i != from && b.cells[i] != '.' {
			return false
		}
	}
	return true
}

func (b burrow) swap(i, j int) burrow {
	c := []byte(b.cells)
	c[i], c[j] = c[j], c[i]
	return burrow{string(c), b.depth}
}

type burrowMove struct {
	next burrow
	cost int
}

func (b burrow) moves() []burrowMove {
	var moves []burrowMove
	// Move into a destination room when possible; such a move is never
	// worse than anything else, so take it alone.
	for h := range hallLen {
		c := b.cells[h]
		if c == '.' {
			continue
		}
		room := int(c - 'A')
		ok, free := b.settled(room)
		if !ok || free < 0 || !b.hallClear(h, roomCol(room)) {
			continue
		}
		steps := abs(h-roomCol(room)) + free + 1
		return []burrowMove{{b.swap(h, b.slot(room, free)), steps * moveEnergy[room]}}
	}
	for room := range 4 {
		if ok, _ := b.settled(room); ok {
			continue
		}
		d := b.top(room)
		i := b.slot(room, d)
		energy := moveEnergy[b.cells[i]-'A']
		for _, h := range hallStops {
			if !b.hallClear(roomCol(room), h) {
				continue
			}
			steps := d + 1 + abs(h-roomCol(room))
			moves = append(moves, burrowMove{b.swap(i, h), steps * energy})
		}
	}
	return moves
}

func (b burrow) done() bool {
	for room := range 4 {
		if ok, free := b.settled(room); !ok || free >= 0 {
			return false
		}
	}
	return true
}

// organize finds the least energy needed to sort the amphipods into
// their rooms, A through D from left to right.
func organize(rows []string) (int, error) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(".", hallLen))
	for room := range 4 {
		for _, row := range rows {
			sb.WriteByte(row[room])
		}
	}
	start := burrow{sb.String(), len(rows)}

	type state struct {
		b    burrow
		cost int
	}
	best := map[string]int{start.cells: 0}
	h := heapq.New(func(a, b state) bool { return a.cost < b.cost })
	h.Push(state{start, 0})
	for h.Len() > 0 {
		cur := h.Pop()
		if cur.b.done() {
			return cur.cost, nil
		}
		if cur.cost > best[cur.b.cells] {
			continue
		}
		for _, m := range cur.b.moves() {
			cost := cur.cost + m.cost
			if c, ok := best[m.next.cells]; ok && c <= cost {
				continue
			}
			best[m.next.cells] = cost
			h.Push(state{m.next, cost})
		}
	}
	return 0, errors.New("amphipods cannot be organized")
}
