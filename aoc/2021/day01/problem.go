package aoc2021day01

import (
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2021, 1, "Sonar Sweep", parse, part1, part2)

func parse(input string) ([]int, error) {
	return utils.Ints(input)
}

func part1(depths []int) (any, error) {
	return countIncreases(depths, 1), nil
}

// A three-measurement window grows exactly when the value entering it is
// larger than the one leaving it.
func part2(depths []int) (any, error) {
	return countIncreases(depths, 3), nil
}

func countIncreases(depths []int, window int) int {
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}

	return count
}
