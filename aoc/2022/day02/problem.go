package aoc2022day02

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2022, 2, "Rock Paper Scissors", parse, part1, part2)

// Round holds both columns as 0, 1 or 2 (rock, paper, scissors for the
// opponent; the meaning of the second column depends on the part).
type Round struct {
	Opponent int
	Response int
}

func parse(input string) ([]Round, error) {
	var rounds []Round
	for i, line := range utils.Lines(input) {
		if len(line) != 3 || line[1] != ' ' ||
			line[0] < 'A' || line[0] > 'C' || line[2] < 'X' || line[2] > 'Z' {
			return nil, fmt.Errorf("line %d: invalid round %q", i+1, line)
		}
		rounds = append(rounds, Round{Opponent: int(line[0] - 'A'), Response: int(line[2] - 'X')})
	}

	return rounds, nil
}

func part1(rounds []Round) (any, error) {
	total := 0
	for _, r := range rounds {
		outcome := (r.Response - r.Opponent + 4) % 3
		total += r.Response + 1 + 3*outcome
	}

	return total, nil
}

// In part 2 the second column is the outcome: lose, draw, win.
func part2(rounds []Round) (any, error) {
	total := 0
	for _, r := range rounds {
		shape := (r.Opponent + r.Response + 2) % 3
		total += shape + 1 + 3*r.Response
	}

	return total, nil
}
