package aoc2024day02

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2024, 2, "Red-Nosed Reports", parse, part1, part2)

func parse(input string) ([][]int, error) {
	var reports [][]int
	for i, line := range utils.Lines(input) {
		levels, err := utils.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", i+1, err)
		}
		reports = append(reports, levels)
	}

	return reports, nil
}

func part1(reports [][]int) (any, error) {
	count := 0
	for _, r := range reports {
		if isSafe(r) {
			count++
		}
	}

	return count, nil
}

// part2 tolerates a single bad level: a report counts when removing any one
// level makes it safe.
func part2(reports [][]int) (any, error) {
	count := 0
	for _, r := range reports {
		if isSafe(r) || dampened(r) {
			count++
		}
	}

	return count, nil
}

func dampened(levels []int) bool {
	without := make([]int, 0, len(levels))
	for skip := range levels {
		without = without[:0]
		without = append(without, levels[:skip]...)
		without = append(without, levels[skip+1:]...)
		if isSafe(without) {
			return true
		}
	}
	return false
}

// isSafe reports whether levels are strictly monotonic with steps of 1 to 3.
func isSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}

	increasing := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		diff := levels[i] - levels[i-1]
		if !increasing {
			diff = -diff
		}
		if diff < 1 || diff > 3 {
			return false
		}
	}
	return true
}
