package aoc2022day04

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2022, 4, "Camp Cleanup", parse, part1, part2)

type Section struct {
	Start, End int
}

func (s Section) contains(o Section) bool {
	return s.Start <= o.Start && o.End <= s.End
}

func (s Section) overlaps(o Section) bool {
	return s.Start <= o.End && o.Start <= s.End
}

type Pair [2]Section

func parse(input string) ([]Pair, error) {
	var pairs []Pair
	for i, line := range utils.Lines(input) {
		var p Pair
		if _, err := fmt.Sscanf(line, "%d-%d,%d-%d", &p[0].Start, &p[0].End, &p[1].Start, &p[1].End); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}

func part1(pairs []Pair) (any, error) {
	count := 0
	for _, p := range pairs {
		if p[0].contains(p[1]) || p[1].contains(p[0]) {
			count++
		}
	}

	return count, nil
}

func part2(pairs []Pair) (any, error) {
	count := 0
	for _, p := range pairs {
		if p[0].overlaps(p[1]) {
			count++
		}
	}

	return count, nil
}
