package aoc2023day11

import (
	"errors"
	"slices"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

var Puzzle = puzzle.New(2023, 11, "Cosmic Expansion", parse, part1, part2)

type Image struct {
	galaxies []grid.Point
	// emptyRowsBefore[y] counts the empty rows above y; likewise for columns.
	emptyRowsBefore []int
	emptyColsBefore []int
}

func parse(input string) (*Image, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	img := &Image{}
	rowUsed := make([]bool, g.Height)
	colUsed := make([]bool, g.Width)
	var invalid bool
	g.Points(func(p grid.Point, b byte) {
		switch b {
		case '#':
			img.galaxies = append(img.galaxies, p)
			rowUsed[p.Y] = true
			colUsed[p.X] = true
		case '.':
		default:
			invalid = true
		}
	})
	if invalid {
		return nil, errors.New("image may only contain '.' and '#'")
	}

	img.emptyRowsBefore = prefixEmpty(rowUsed)
	img.emptyColsBefore = prefixEmpty(colUsed)
	return img, nil
}

func prefixEmpty(used []bool) []int {
	counts := make([]int, len(used))
	empty := 0
	for i, u := range used {
		counts[i] = empty
		if !u {
			empty++
		}
	}
	return counts
}

func part1(img *Image) (any, error) {
	return img.distanceSum(2), nil
}

func part2(img *Image) (any, error) {
	return img.distanceSum(1_000_000), nil
}

// distanceSum replaces every empty row and column by factor copies and sums
// the Manhattan distance over all galaxy pairs. Each axis is handled on its
// own: over sorted coordinates, the i-th value contributes i*x minus the sum
// of those before it.
func (img *Image) distanceSum(factor int) int {
	xs := make([]int, len(img.galaxies))
	ys := make([]int, len(img.galaxies))
	for i, g := range img.galaxies {
		xs[i] = g.X + (factor-1)*img.emptyColsBefore[g.X]
		ys[i] = g.Y + (factor-1)*img.emptyRowsBefore[g.Y]
	}

	return axisSum(xs) + axisSum(ys)
}

func axisSum(values []int) int {
	slices.Sort(values)
	total, prefix := 0, 0
	for i, v := range values {
		total += i*v - prefix
		prefix += v
	}
	return total
}
