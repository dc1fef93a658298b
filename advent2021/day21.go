package main

import (
	"fmt"

	"github.com/seafloor/puzzles/internal/puzzle"
)

func init() {
	register("21", day21)
}

func day21(in *puzzle.Input) (puzzle.Result, error) {
	lines := in.Lines()
	if len(lines) != 2 {
		return puzzle.Result{}, fmt.Errorf("want 2 players; got %d lines", len(lines))
	}
	var start [2]int
	for i, line := range lines {
		var player int
		if _, err := fmt.Sscanf(line, "Player %d starting position: %d", &player, &start[i]); err != nil {
			return puzzle.Result{}, fmt.Errorf("line %d: %s", i+1, err)
		}
		if start[i] < 1 || start[i] > 10 {
			return puzzle.Result{}, fmt.Errorf("line %d: position %d off the board", i+1, start[i])
		}
	}
	wins := quantumWins(start)
	in.Tracef("quantum wins: %d vs %d", wins[0], wins[1])
	return puzzle.Answer(deterministicGame(start), max(wins[0], wins[1])), nil
}

func move(pos, steps int) int {
	return (pos+steps-1)%10 + 1
}

// deterministicGame plays to 1000 with a 100-sided die that rolls
// 1, 2, 3, ... and returns the loser's score times the number of rolls.
func deterministicGame(start [2]int) int {
	pos := start
	var score [2]int
	rolls := 0
	roll := func() int {
		rolls++
		return (rolls-1)%100 + 1
	}
	for turn := 0; ; turn ^= 1 {
		pos[turn] = move(pos[turn], roll()+roll()+roll())
		score[turn] += pos[turn]
		if score[turn] >= 1000 {
			return score[turn^1] * rolls
		}
	}
}

// diracRolls[s] is the number of universes in which three rolls of the
// three-sided Dirac die sum to s.
var diracRolls = [10]int{3: 1, 4: 3, 5: 6, 6: 7, 7: 6, 8: 3, 9: 1}

type diracState struct {
	pos   [2]int
	score [2]int
}

// quantumWins counts the universes each player wins in, playing to 21.
func quantumWins(start [2]int) [2]int {
	memo := make(map[diracState][2]int)
	// wins returns the win counts for (player to move, other player).
	var wins func(s diracState) [2]int
	wins = func(s diracState) [2]int {
		if w, ok := memo[s]; ok {
			return w
		}
		var total [2]int
		for sum, n := range diracRolls {
			if n == 0 {
				continue
			}
			pos := move(s.pos[0], sum)
			score := s.score[0] + pos
			if score >= 21 {
				total[0] += n
				continue
			}
			sub := wins(diracState{
				pos:   [2]int{s.pos[1], pos},
				score: [2]int{s.score[1], score},
			})
			total[0] += n * sub[1]
			total[1] += n * sub[0]
		}
		memo[s] = total
		return total
	}
	return wins(diracState{pos: start})
}
