package aoc2025day02

import (
	"fmt"
	"strings"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2025, 2, "Gift Shop", parse, part1, part2)

type IDRange struct {
	First, Last int
}

func parse(input string) ([]IDRange, error) {
	var ranges []IDRange
	for part := range strings.SplitSeq(strings.ReplaceAll(strings.TrimSpace(input), "\n", ""), ",") {
		if part == "" {
			continue
		}
		first, last, ok := strings.Cut(part, "-")
		if !ok {
			return nil, fmt.Errorf("malformed range %q", part)
		}
		a, err := utils.ToInt(first)
		if err != nil {
			return nil, err
		}
		b, err := utils.ToInt(last)
		if err != nil {
			return nil, err
		}
		if a < 1 || a > b {
			return nil, fmt.Errorf("invalid range %q", part)
		}
		ranges = append(ranges, IDRange{a, b})
	}

	return ranges, nil
}

// part1 sums IDs made of one digit sequence repeated exactly twice.
func part1(ranges []IDRange) (any, error) {
	return sumInvalid(ranges, func(digits int) []int {
		if digits%2 != 0 {
			return nil
		}
		return []int{digits / 2}
	}), nil
}

// part2 sums IDs made of a sequence repeated at least twice.
func part2(ranges []IDRange) (any, error) {
	return sumInvalid(ranges, func(digits int) []int {
		var periods []int
		for p := 1; p <= digits/2; p++ {
			if digits%p == 0 {
				periods = append(periods, p)
			}
		}
		return periods
	}), nil
}

// sumInvalid generates the repeated IDs inside each range instead of
// scanning every ID. A number with `digits` digits that repeats a block of
// p digits is block * (10^(digits-p) + ... + 10^p + 1).
func sumInvalid(ranges []IDRange, periods func(digits int) []int) int {
	total := 0
	for _, r := range ranges {
		seen := make(map[int]bool)
		for digits := numDigits(r.First); digits <= numDigits(r.Last); digits++ {
			for _, p := range periods(digits) {
				multiplier := 0
				for range digits / p {
					multiplier = multiplier*pow10(p) + 1
				}

				lo := max(pow10(p-1), ceilDiv(r.First, multiplier))
				hi := min(pow10(p)-1, r.Last/multiplier)
				for block := lo; block <= hi; block++ {
					id := block * multiplier
					if !seen[id] {
						seen[id] = true
						total += id
					}
				}
			}
		}
	}
	return total
}

func numDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func pow10(n int) int {
	p := 1
	for range n {
		p *= 10
	}
	return p
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
