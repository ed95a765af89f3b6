package aoc2020day01

import (
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

const target = 2020

var Puzzle = puzzle.New(2020, 1, "Report Repair", parse, part1, part2)

func parse(input string) ([]int, error) {
	lines := utils.Lines(input)
	entries := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := utils.ToInt(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, n)
	}

	return entries, nil
}

func part1(entries []int) (any, error) {
	a, b, ok := pairSum(entries, target)
	if !ok {
		return nil, puzzle.ErrNoSolution
	}

	return a * b, nil
}

func part2(entries []int) (any, error) {
	for i, n := range entries {
		a, b, ok := pairSum(entries[i+1:], target-n)
		if ok {
			return n * a * b, nil
		}
	}

	return nil, puzzle.ErrNoSolution
}

func pairSum(entries []int, target int) (int, int, bool) {
	seen := make(map[int]struct{})

	for _, n := range entries {
		m := target - n
		if _, exists := seen[m]; exists {
			return n, m, true
		}
		seen[n] = struct{}{}
	}

	return 0, 0, false
}
