package aoc2021day03

import (
	"fmt"
	"strconv"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2021, 3, "Binary Diagnostic", parse, part1, part2)

func parse(input string) ([]string, error) {
	lines := utils.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty report")
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("line %d: expected %d bits, got %d", i+1, width, len(line))
		}
		for _, c := range line {
			if c != '0' && c != '1' {
				return nil, fmt.Errorf("line %d: invalid bit %q", i+1, c)
			}
		}
	}

	return lines, nil
}

func part1(lines []string) (any, error) {
	var gamma, epsilon int

	for i := range len(lines[0]) {
		ones, zeros := countBits(lines, i)

		gamma <<= 1
		epsilon <<= 1
		if ones > zeros {
			gamma |= 1
		} else {
			epsilon |= 1
		}
	}

	return gamma * epsilon, nil
}

func part2(lines []string) (any, error) {
	oxygen, err := rating(lines, func(ones, zeros int) byte {
		if ones >= zeros {
			return '1'
		}
		return '0'
	})
	if err != nil {
		return nil, err
	}

	co2, err := rating(lines, func(ones, zeros int) byte {
		if ones >= zeros {
			return '0'
		}
		return '1'
	})
	if err != nil {
		return nil, err
	}

	return oxygen * co2, nil
}

// rating narrows the report bit by bit, keeping lines whose bit matches the
// criteria, until one line is left. A bit no line has is skipped.
func rating(lines []string, criteria func(ones, zeros int) byte) (int, error) {
	for i := 0; i < len(lines[0]) && len(lines) > 1; i++ {
		ones, zeros := countBits(lines, i)
		if kept := filterLines(lines, i, criteria(ones, zeros)); len(kept) > 0 {
			lines = kept
		}
	}

	v, err := strconv.ParseInt(lines[0], 2, 64)
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

func countBits(lines []string, index int) (ones, zeros int) {
	for _, line := range lines {
		if line[index] == '1' {
			ones++
		} else {
			zeros++
		}
	}
	return ones, zeros
}

func filterLines(lines []string, index int, value byte) []string {
	var filtered []string
	for _, line := range lines {
		if line[index] == value {
			filtered = append(filtered, line)
		}
	}
	return filtered
}
