package aoc2025day03

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2025, 3, "Lobby", parse, part1, part2)

func parse(input string) ([][]int, error) {
	var banks [][]int
	for i, line := range utils.Lines(input) {
		bank := make([]int, 0, len(line))
		for _, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("bank %d: %q is not a battery", i+1, c)
			}
			bank = append(bank, int(c-'0'))
		}
		banks = append(banks, bank)
	}

	return banks, nil
}

func part1(banks [][]int) (any, error) {
	return totalJoltage(banks, 2)
}

func part2(banks [][]int) (any, error) {
	return totalJoltage(banks, 12)
}

func totalJoltage(banks [][]int, size int) (int, error) {
	total := 0
	for i, bank := range banks {
		if len(bank) < size {
			return 0, fmt.Errorf("bank %d has fewer than %d batteries", i+1, size)
		}
		total += maxJoltage(bank, size)
	}
	return total, nil
}

// maxJoltage picks size batteries, keeping their order, to form the largest
// number. A smaller digit is dropped from the stack whenever a larger one
// follows and enough batteries remain to fill the selection.
func maxJoltage(bank []int, size int) int {
	drop := len(bank) - size
	stack := make([]int, 0, len(bank))
	for _, d := range bank {
		for drop > 0 && len(stack) > 0 && stack[len(stack)-1] < d {
			stack = stack[:len(stack)-1]
			drop--
		}
		stack = append(stack, d)
	}

	joltage := 0
	for _, d := range stack[:size] {
		joltage = joltage*10 + d
	}
	return joltage
}
