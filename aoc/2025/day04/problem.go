package aoc2025day04

import (
	"fmt"

	"github.com/povarna/advent-of-code/internal/grid"
	"github.com/povarna/advent-of-code/internal/puzzle"
)

const (
	roll        = '@'
	maxCrowding = 4
	removedMark = 'x'
)

var Puzzle = puzzle.New(2025, 4, "Printing Department", parse, part1, part2)

func parse(input string) (*grid.Grid, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return nil, err
	}

	var bad error
	g.Points(func(p grid.Point, b byte) {
		if b != roll && b != '.' && bad == nil {
			bad = fmt.Errorf("unexpected %q at %s", b, p)
		}
	})
	return g, bad
}

func part1(diagram *grid.Grid) (any, error) {
	return len(accessible(diagram)), nil
}

// part2 keeps removing every accessible roll until none are left.
func part2(diagram *grid.Grid) (any, error) {
	g := diagram.Clone()
	removed := 0
	for {
		rolls := accessible(g)
		if len(rolls) == 0 {
			return removed, nil
		}
		for _, p := range rolls {
			g.Set(p, removedMark)
		}
		removed += len(rolls)
	}
}

// accessible returns the rolls with fewer than four neighbouring rolls.
func accessible(g *grid.Grid) []grid.Point {
	var rolls []grid.Point
	g.Points(func(p grid.Point, b byte) {
		if b != roll {
			return
		}
		neighbours := 0
		for _, n := range p.Neighbours() {
			if g.At(n) == roll {
				neighbours++
			}
		}
		if neighbours < maxCrowding {
			rolls = append(rolls, p)
		}
	})
	return rolls
}
