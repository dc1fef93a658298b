package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("4", day4)
}

const bingoSize = 5

type bingoBoard struct {
	values [bingoSize][bingoSize]int
	marked [bingoSize][bingoSize]bool
	won    bool
}

// mark marks n and reports whether the board now has a complete row
// or column.
func (b *bingoBoard) mark(n int) bool {
	for i := range bingoSize {
		for j := range bingoSize {
			if b.values[i][j] == n {
				b.marked[i][j] = true
				return b.complete(i, j)
			}
		}
	}
	return false
}

func (b *bingoBoard) complete(i, j int) bool {
	row, col := true, true
	for k := range bingoSize {
		row = row && b.marked[i][k]
		col = col && b.marked[k][j]
	}
	return row || col
}

func (b *bingoBoard) unmarkedSum() int {
	var sum int
	for i := range bingoSize {
		for j := range bingoSize {
			if !b.marked[i][j] {
				sum += b.values[i][j]
			}
		}
	}
	return sum
}

func day4(in *puzzle.Input) (puzzle.Result, error) {
	blocks := in.Blocks()
	if len(blocks) < 2 || len(blocks[0]) != 1 {
		return puzzle.Result{}, fmt.Errorf("want a line of draws followed by boards")
	}
	draws, err := puzzle.SplitInts(blocks[0][0])
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("bad draws: %s", err)
	}
	boards := make([]*bingoBoard, len(blocks)-1)
	for i, block := range blocks[1:] {
		if boards[i], err = parseBingoBoard(block); err != nil {
			return puzzle.Result{}, fmt.Errorf("board %d: %s", i+1, err)
		}
	}
	in.Tracef("parsed %d boards", len(boards))

	var scores []int
	for _, n := range draws {
		for i, b := range boards {
			if b.won || !b.mark(n) {
				continue
			}
			b.won = true
			in.Tracef("board %d won on %d", i+1, n)
			scores = append(scores, b.unmarkedSum()*n)
		}
	}
	if len(scores) == 0 {
		return puzzle.Result{}, fmt.Errorf("no board won")
	}
	return puzzle.Answer(scores[0], scores[len(scores)-1]), nil
}

func parseBingoBoard(lines []string) (*bingoBoard, error) {
	if len(lines) != bingoSize {
		return nil, fmt.Errorf("got %d rows; want %d", len(lines), bingoSize)
	}
	b := new(bingoBoard)
	for i, line := range lines {
		row, err := puzzle.SplitInts(line)
		if err != nil {
			return nil, err
		}
		if len(row) != bingoSize {
			return nil, fmt.Errorf("row %d has %d numbers; want %d", i+1, len(row), bingoSize)
		}
		copy(b.values[i][:], row)
	}
	return b, nil
}
