package aoc2025day01

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

const (
	dialSize  = 100
	dialStart = 50
)

var Puzzle = puzzle.New(2025, 1, "Secret Entrance", parse, part1, part2)

// Rotation turns the dial by Clicks; negative values turn it left.
type Rotation struct {
	Clicks int
}

func parse(input string) ([]Rotation, error) {
	var rotations []Rotation
	for i, line := range utils.Lines(input) {
		if len(line) < 2 {
			return nil, fmt.Errorf("line %d: malformed rotation %q", i+1, line)
		}
		clicks, err := utils.ToInt(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if clicks < 0 {
			return nil, fmt.Errorf("line %d: negative rotation %q", i+1, line)
		}

		switch line[0] {
		case 'L':
			rotations = append(rotations, Rotation{Clicks: -clicks})
		case 'R':
			rotations = append(rotations, Rotation{Clicks: clicks})
		default:
			return nil, fmt.Errorf("line %d: unknown direction %q", i+1, line[0])
		}
	}

	return rotations, nil
}

func part1(rotations []Rotation) (any, error) {
	pos, count := dialStart, 0
	for _, r := range rotations {
		pos = turn(pos, r.Clicks)
		if pos == 0 {
			count++
		}
	}

	return count, nil
}

// part2 counts every click that lands on 0, including those passed during
// a rotation.
func part2(rotations []Rotation) (any, error) {
	pos, count := dialStart, 0
	for _, r := range rotations {
		count += zeroesPassed(pos, r.Clicks)
		pos = turn(pos, r.Clicks)
	}

	return count, nil
}

func turn(pos, clicks int) int {
	return ((pos+clicks)%dialSize + dialSize) % dialSize
}

func zeroesPassed(pos, clicks int) int {
	if clicks >= 0 {
		return (pos + clicks) / dialSize
	}

	clicks = -clicks
	switch {
	case pos == 0:
		return clicks / dialSize
	case clicks >= pos:
		return (clicks-pos)/dialSize + 1
	}
	return 0
}
