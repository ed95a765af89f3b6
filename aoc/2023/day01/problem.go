package aoc2023day01

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2023, 1, "Trebuchet?!", parse, part1, part2)

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func parse(input string) ([]string, error) {
	return utils.Lines(input), nil
}

func part1(lines []string) (any, error) {
	return calibrate(lines, false)
}

func part2(lines []string) (any, error) {
	return calibrate(lines, true)
}

func calibrate(lines []string, words bool) (int, error) {
	result := 0
	for i, line := range lines {
		var found []int
		for j := range len(line) {
			if d, ok := digitAt(line[j:], words); ok {
				found = append(found, d)
			}
		}
		if len(found) == 0 {
			return 0, fmt.Errorf("line %d: no digits in %q", i+1, line)
		}
		result += found[0]*10 + found[len(found)-1]
	}

	return result, nil
}

// digitAt reports the digit starting s. Spelled out words may overlap, so
// "eightwo" yields both 8 and 2.
func digitAt(s string, words bool) (int, bool) {
	if s[0] >= '0' && s[0] <= '9' {
		return int(s[0] - '0'), true
	}
	if words {
		for i, w := range spelled {
			if strings.HasPrefix(s, w) {
				return i + 1, true
			}
		}
	}
	return 0, false
}
