package aoc2022day01

import (
	"fmt"
	"slices"

	"github.com/povarna/advent-of-code/internal/mathx"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2022, 1, "Calorie Counting", parse, part1, part2)

// parse returns the calories carried by each elf, largest first.
func parse(input string) ([]int, error) {
	var totals []int
	for i, block := range utils.Blocks(input) {
		calories, err := utils.Ints(block)
		if err != nil {
			return nil, fmt.Errorf("elf %d: %w", i+1, err)
		}
		totals = append(totals, mathx.Sum(calories))
	}

	if len(totals) == 0 {
		return nil, fmt.Errorf("no elves in input")
	}

	slices.Sort(totals)
	slices.Reverse(totals)
	return totals, nil
}

func part1(totals []int) (any, error) {
	return totals[0], nil
}

func part2(totals []int) (any, error) {
	return mathx.Sum(totals[:min(3, len(totals))]), nil
}
