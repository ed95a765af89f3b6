package aoc2021day05

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
	"github.com/povarna/advent-of-code/internal/utils"
)

var Puzzle = puzzle.New(2021, 5, "Hydrothermal Venture", parse, part1, part2)

type Line struct {
	From, To grid.Point
}

func (l Line) isAxisAligned() bool {
	return l.From.X == l.To.X || l.From.Y == l.To.Y
}

func (l Line) isDiagonal() bool {
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	return dx == dy || dx == -dy
}

func parse(input string) ([]Line, error) {
	var vents []Line
	for i, row := range utils.Lines(input) {
		var l Line
		if _, err := fmt.Sscanf(row, "%d,%d -> %d,%d", &l.From.X, &l.From.Y, &l.To.X, &l.To.Y); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if !l.isAxisAligned() && !l.isDiagonal() {
			return nil, fmt.Errorf("line %d: %q is neither straight nor diagonal", i+1, row)
		}
		vents = append(vents, l)
	}

	return vents, nil
}

func part1(vents []Line) (any, error) {
	return overlaps(vents, false), nil
}

func part2(vents []Line) (any, error) {
	return overlaps(vents, true), nil
}

func overlaps(vents []Line, diagonals bool) int {
	covered := make(map[grid.Point]int)

	for _, l := range vents {
		if !l.isAxisAligned() && !diagonals {
			continue
		}

		step := grid.Point{X: sign(l.To.X - l.From.X), Y: sign(l.To.Y - l.From.Y)}
		for p := l.From; ; p = p.Add(step) {
			covered[p]++
			if p == l.To {
				break
			}
		}
	}

	var ans int
	for _, v := range covered {
		if v >= 2 {
			ans++
		}
	}
	return ans
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
