package aoc2023day04

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 4, "Scratchcards", parse, part1, part2)

// parse returns the number of winning numbers on each card.
func parse(input string) ([]int, error) {
	var matches []int
	for i, line := range utils.Lines(input) {
		_, numbers, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing card header", i+1)
		}
		winningPart, havePart, ok := strings.Cut(numbers, "|")
		if !ok {
			return nil, fmt.Errorf("line %d: missing '|'", i+1)
		}

		winning, err := utils.Ints(winningPart)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		have, err := utils.Ints(havePart)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		isWinning := make(map[int]bool, len(winning))
		for _, n := range winning {
			isWinning[n] = true
		}
		count := 0
		for _, n := range have {
			if isWinning[n] {
				count++
			}
		}
		matches = append(matches, count)
	}

	return matches, nil
}

func part1(matches []int) (any, error) {
	total := 0
	for _, m := range matches {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}

	return total, nil
}

// Each card wins one copy of the next m cards per copy held.
func part2(matches []int) (any, error) {
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}

	total := 0
	for i, m := range matches {
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(matches); j++ {
			copies[j] += copies[i]
		}
	}

	return total, nil
}
