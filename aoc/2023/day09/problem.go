package aoc2023day09

import (
	"fmt"
	"slices"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 9, "Mirage Maintenance", parse, part1, part2)

func parse(input string) ([][]int, error) {
	var histories [][]int
	for i, line := range utils.Lines(input) {
		values, err := utils.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("line %d: empty history", i+1)
		}
		histories = append(histories, values)
	}

	return histories, nil
}

func part1(histories [][]int) (any, error) {
	total := 0
	for _, h := range histories {
		total += extrapolate(h)
	}

	return total, nil
}

// Extrapolating backwards is extrapolating the reversed history forwards.
func part2(histories [][]int) (any, error) {
	total := 0
	for _, h := range histories {
		reversed := slices.Clone(h)
		slices.Reverse(reversed)
		total += extrapolate(reversed)
	}

	return total, nil
}

// extrapolate sums the last value of every difference row.
func extrapolate(values []int) int {
	row := slices.Clone(values)
	next := 0
	for len(row) > 0 {
		next += row[len(row)-1]

		allZero := true
		for i := range len(row) - 1 {
			row[i] = row[i+1] - row[i]
			if row[i] != 0 {
				allZero = false
			}
		}
		row = row[:len(row)-1]
		if allZero {
			break
		}
	}

	return next
}
