package aoc2024day01

import (
	"fmt"
	"slices"

	"github.com/povarna/advent-of-code/internal/mathx"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2024, 1, "Historian Hysteria", parse, part1, part2)

type Lists struct {
	Left, Right []int
}

func parse(input string) (*Lists, error) {
	l := &Lists{}
	for i, line := range utils.Lines(input) {
		nums, err := utils.Ints(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(nums) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 location IDs, got %d", i+1, len(nums))
		}
		l.Left = append(l.Left, nums[0])
		l.Right = append(l.Right, nums[1])
	}

	return l, nil
}

func part1(l *Lists) (any, error) {
	left, right := slices.Sorted(slices.Values(l.Left)), slices.Sorted(slices.Values(l.Right))

	total := 0
	for i := range left {
		total += mathx.Abs(left[i] - right[i])
	}

	return total, nil
}

func part2(l *Lists) (any, error) {
	counts := make(map[int]int)
	for _, n := range l.Right {
		counts[n]++
	}

	score := 0
	for _, n := range l.Left {
		score += n * counts[n]
	}

	return score, nil
}
